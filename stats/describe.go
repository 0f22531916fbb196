// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package stats implements descriptive statistics,
// the normal distribution,
// simple linear regression,
// and histograms.
package stats

import (
	"math"
	"slices"

	"github.com/js-arias/sciops/calcerr"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary is a description of a sample.
type Summary struct {
	Count  int
	Mean   float64
	Std    float64 // sample standard deviation
	Min    float64
	Max    float64
	Median float64
}

// Describe returns the summary of a sample.
// The standard deviation uses n-1 degrees of freedom,
// and it is 0 for a single value.
func Describe(xs []float64) (Summary, error) {
	if len(xs) == 0 {
		return Summary{}, calcerr.Validationf("no data provided")
	}
	if err := checkFinite(xs); err != nil {
		return Summary{}, err
	}

	mean, std := stat.MeanStdDev(xs, nil)
	if len(xs) == 1 {
		std = 0
	}

	return Summary{
		Count:  len(xs),
		Mean:   mean,
		Std:    std,
		Min:    floats.Min(xs),
		Max:    floats.Max(xs),
		Median: Median(xs),
	}, nil
}

// Median returns the median of a sample.
// If the number of values is even
// it returns the average of the two middle values.
// The sample is not modified.
func Median(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	s := slices.Clone(xs)
	slices.Sort(s)

	m := len(s) / 2
	if len(s)%2 == 1 {
		return s[m]
	}
	return (s[m-1] + s[m]) / 2
}

func checkFinite(xs []float64) error {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return calcerr.Validationf("non-finite value %v in data", x)
		}
	}
	return nil
}
