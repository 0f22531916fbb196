// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package optics implements calculations
// of geometric optics.
package optics

import (
	"math"

	"github.com/js-arias/sciops/calcerr"
)

// Refraction is the result of Snell's law.
type Refraction struct {
	// Theta2 is the angle of refraction,
	// in degrees.
	Theta2 float64

	// TIR is true if there is a total internal reflection,
	// in which case there is no transmitted ray
	// and Theta2 is undefined.
	TIR bool
}

// Snell returns the refraction of a ray
// with an angle of incidence theta1
// (in degrees)
// that passes from a medium with index of refraction n1
// to a medium with index of refraction n2.
func Snell(n1, n2, theta1 float64) (Refraction, error) {
	if n1 <= 0 || n2 <= 0 {
		return Refraction{}, calcerr.Validationf("indices of refraction must be positive, got %g and %g", n1, n2)
	}

	s := n1 / n2 * math.Sin(theta1*math.Pi/180)
	if math.Abs(s) > 1 {
		return Refraction{TIR: true}, nil
	}
	return Refraction{Theta2: math.Asin(s) * 180 / math.Pi}, nil
}

// Image is the image formed by a thin lens.
type Image struct {
	Distance      float64
	Magnification float64

	Real     bool // otherwise virtual
	Inverted bool // otherwise upright

	// AtInfinity is true if the object is at the focal point,
	// and the output is collimated.
	AtInfinity bool
}

// ThinLens returns the image of an object
// at distance do from a lens with focal length f
// (1/f = 1/do + 1/di).
func ThinLens(f, do float64) (Image, error) {
	if f == 0 {
		return Image{}, calcerr.Validationf("focal length cannot be zero")
	}
	if do == 0 {
		return Image{}, calcerr.Validationf("object distance cannot be zero")
	}

	den := 1/f - 1/do
	if den == 0 {
		return Image{AtInfinity: true}, nil
	}
	di := 1 / den
	m := -di / do
	return Image{
		Distance:      di,
		Magnification: m,
		Real:          di > 0,
		Inverted:      m < 0,
	}, nil
}
