// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package em implements simple calculations
// of electromagnetism.
package em

import (
	"math"

	"github.com/js-arias/sciops/calcerr"
	"github.com/js-arias/sciops/physconst"
)

// Force is an electrostatic force between two charges.
type Force struct {
	Magnitude float64 // in N
	Repulsive bool
}

// Coulomb returns the force between two charges
// (in C)
// separated by a distance r
// (in m).
func Coulomb(q1, q2, r float64) (Force, error) {
	if r <= 0 {
		return Force{}, calcerr.Validationf("separation distance must be positive, got %g", r)
	}
	return Force{
		Magnitude: physconst.KE * math.Abs(q1*q2) / (r * r),
		Repulsive: q1*q2 > 0,
	}, nil
}

// Reactances are the reactances of an inductor
// and a capacitor in series,
// in Ω.
type Reactances struct {
	XL    float64
	XC    float64
	Total float64
}

// Reactance returns the reactance
// at frequency f (in Hz)
// of an inductor (in H)
// and a capacitor (in F) in series.
// A non-positive inductance or capacitance
// means that the component is absent,
// but at least one must be present.
func Reactance(f, inductance, capacitance float64) (Reactances, error) {
	if f <= 0 {
		return Reactances{}, calcerr.Validationf("frequency must be positive, got %g", f)
	}
	if inductance <= 0 && capacitance <= 0 {
		return Reactances{}, calcerr.Validationf("inductance or capacitance must be positive")
	}

	w := 2 * math.Pi * f
	var r Reactances
	if inductance > 0 {
		r.XL = w * inductance
	}
	if capacitance > 0 {
		r.XC = -1 / (w * capacitance)
	}
	r.Total = r.XL + r.XC
	return r, nil
}
