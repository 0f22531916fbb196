// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package relativity implements simple calculations
// of special and general relativity.
package relativity

import (
	"math"

	"github.com/js-arias/sciops/calcerr"
	"github.com/js-arias/sciops/physconst"
)

// Beta returns the velocity as a fraction of the speed of light.
// If fractionOfC is true,
// v is already a fraction of c,
// otherwise it is in m/s.
func Beta(v float64, fractionOfC bool) float64 {
	if fractionOfC {
		return v
	}
	return v / physconst.C
}

// Gamma returns the Lorentz factor
// for a velocity β
// (as a fraction of c).
func Gamma(beta float64) (float64, error) {
	if !(beta >= 0 && beta < 1) {
		return 0, calcerr.Validationf("β must be in [0, 1), got %g", beta)
	}
	return 1 / math.Sqrt(1-beta*beta), nil
}

// TimeDilation returns the time interval
// measured by an observer
// for which a clock with the given proper time interval
// moves at velocity β.
func TimeDilation(properTime, beta float64) (float64, error) {
	if properTime < 0 {
		return 0, calcerr.Validationf("proper time must be non-negative, got %g", properTime)
	}
	g, err := Gamma(beta)
	if err != nil {
		return 0, err
	}
	return g * properTime, nil
}

// LengthContraction returns the length
// of an object with the given proper length
// that moves at velocity β.
func LengthContraction(properLength, beta float64) (float64, error) {
	if properLength < 0 {
		return 0, calcerr.Validationf("proper length must be non-negative, got %g", properLength)
	}
	g, err := Gamma(beta)
	if err != nil {
		return 0, err
	}
	return properLength / g, nil
}

// Energies are the relativistic energies of a moving mass,
// in J.
type Energies struct {
	Rest    float64
	Total   float64
	Kinetic float64
}

// Energy returns the energies of a mass (in kg)
// moving at velocity β.
func Energy(mass, beta float64) (Energies, error) {
	if mass < 0 {
		return Energies{}, calcerr.Validationf("mass must be non-negative, got %g", mass)
	}
	g, err := Gamma(beta)
	if err != nil {
		return Energies{}, err
	}

	mc2 := mass * physconst.C * physconst.C
	return Energies{
		Rest:    mc2,
		Total:   g * mc2,
		Kinetic: (g - 1) * mc2,
	}, nil
}

// GravDilation is the gravitational time dilation
// outside a non-rotating mass.
type GravDilation struct {
	// RsOverR is the ratio between the Schwarzschild radius
	// and the distance: 2GM/(r·c²).
	RsOverR float64

	// Factor is dτ/dt,
	// the proper time per far-away coordinate time.
	Factor float64
}

// GravitationalDilation returns the time dilation
// at a distance r (in m)
// from the center of a mass M (in kg).
func GravitationalDilation(mass, r float64) (GravDilation, error) {
	if mass <= 0 || r <= 0 {
		return GravDilation{}, calcerr.Validationf("mass and radius must be positive, got %g and %g", mass, r)
	}

	rs := 2 * physconst.G * mass / (r * physconst.C * physconst.C)
	if rs >= 1 {
		return GravDilation{}, calcerr.Validationf("r is at or inside the Schwarzschild radius")
	}
	return GravDilation{
		RsOverR: rs,
		Factor:  math.Sqrt(1 - rs),
	}, nil
}
