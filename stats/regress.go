// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/js-arias/sciops/calcerr"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Regression is the result of a simple linear regression
// y = Slope*x + Intercept.
type Regression struct {
	Slope     float64
	Intercept float64
	R         float64 // correlation, with the sign of the slope
	R2        float64 // coefficient of determination
}

// LinearRegression fits a line to a set of points
// using least squares.
func LinearRegression(xs, ys []float64) (Regression, error) {
	if len(xs) != len(ys) {
		return Regression{}, calcerr.Validationf("x and y have different lengths: %d and %d", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return Regression{}, calcerr.Validationf("need at least 2 points for a regression, got %d", len(xs))
	}
	if err := checkFinite(xs); err != nil {
		return Regression{}, err
	}
	if err := checkFinite(ys); err != nil {
		return Regression{}, err
	}
	if floats.Min(xs) == floats.Max(xs) {
		return Regression{}, calcerr.Validationf("all x values are equal")
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)

	var r2 float64
	if floats.Min(ys) != floats.Max(ys) {
		r2 = stat.RSquared(xs, ys, nil, alpha, beta)
	}
	r := math.Sqrt(math.Max(0, r2))
	if beta < 0 {
		r = -r
	}

	return Regression{
		Slope:     beta,
		Intercept: alpha,
		R:         r,
		R2:        r2,
	}, nil
}

// CombineUncertainty combines independent uncertainties
// in quadrature
// (the square root of the sum of squares).
func CombineUncertainty(us []float64) (float64, error) {
	if len(us) == 0 {
		return 0, calcerr.Validationf("no uncertainties provided")
	}
	if err := checkFinite(us); err != nil {
		return 0, err
	}
	return floats.Norm(us, 2), nil
}
