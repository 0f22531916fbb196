// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package units implements a simple unit conversion
// with dimensional checks.
package units

import (
	"slices"
	"strings"

	"github.com/js-arias/sciops/calcerr"
)

// A Unit is a unit of measure.
type Unit struct {
	Symbol string

	// Scale is the value of the unit
	// in the SI unit of its dimension.
	Scale float64
}

// A Dimension is a physical dimension
// and its known units.
type Dimension struct {
	Name  string
	Units []Unit
}

var dimensions = []Dimension{
	{
		Name: "length",
		Units: []Unit{
			{"m", 1},
			{"km", 1000},
			{"cm", 0.01},
			{"mm", 0.001},
			{"ft", 0.3048},
			{"in", 0.0254},
		},
	},
	{
		Name: "time",
		Units: []Unit{
			{"s", 1},
			{"min", 60},
			{"h", 3600},
		},
	},
	{
		Name: "mass",
		Units: []Unit{
			{"kg", 1},
			{"g", 0.001},
			{"lb", 0.45359237},
		},
	},
	{
		Name: "velocity",
		Units: []Unit{
			{"m/s", 1},
			{"km/h", 1000.0 / 3600.0},
			{"mph", 0.44704},
		},
	},
	{
		Name: "pressure",
		Units: []Unit{
			{"Pa", 1},
			{"kPa", 1000},
			{"bar", 100_000},
			{"atm", 101_325},
		},
	},
}

// Dimensions returns the known dimensions.
func Dimensions() []Dimension {
	ds := make([]Dimension, 0, len(dimensions))
	for _, d := range dimensions {
		ds = append(ds, Dimension{
			Name:  d.Name,
			Units: slices.Clone(d.Units),
		})
	}
	return ds
}

// Symbols returns the symbols of the units
// of the dimension.
func (d Dimension) Symbols() []string {
	s := make([]string, 0, len(d.Units))
	for _, u := range d.Units {
		s = append(s, u.Symbol)
	}
	return s
}

// Find returns the dimension and the unit
// of a unit symbol.
func Find(symbol string) (string, Unit, error) {
	for _, d := range dimensions {
		for _, u := range d.Units {
			if u.Symbol == symbol {
				return d.Name, u, nil
			}
		}
	}
	return "", Unit{}, calcerr.NotFoundf("unknown unit %q", symbol).WithHint("see 'sciops units dims' for the known units")
}

// Convert converts a value between two units
// of the same dimension.
func Convert(v float64, from, to string) (float64, error) {
	fd, fu, err := Find(from)
	if err != nil {
		return 0, err
	}
	td, tu, err := Find(to)
	if err != nil {
		return 0, err
	}
	if fd != td {
		return 0, calcerr.Validationf("incompatible units: %q (%s) and %q (%s)", from, fd, to, td)
	}

	return v * fu.Scale / tu.Scale, nil
}

// String returns the dimension
// and its units.
func (d Dimension) String() string {
	return d.Name + ": " + strings.Join(d.Symbols(), ", ")
}
