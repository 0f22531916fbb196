// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package stats

import (
	"github.com/js-arias/sciops/calcerr"
	"gonum.org/v1/gonum/stat/distuv"
)

func normal(mu, sigma float64) (distuv.Normal, error) {
	if !(sigma > 0) {
		return distuv.Normal{}, calcerr.Validationf("sigma must be positive, got %g", sigma)
	}
	return distuv.Normal{Mu: mu, Sigma: sigma}, nil
}

// NormalPDF returns the probability density
// of a normal distribution at x.
func NormalPDF(x, mu, sigma float64) (float64, error) {
	n, err := normal(mu, sigma)
	if err != nil {
		return 0, err
	}
	return n.Prob(x), nil
}

// NormalCDF returns the cumulative probability
// of a normal distribution at x.
func NormalCDF(x, mu, sigma float64) (float64, error) {
	n, err := normal(mu, sigma)
	if err != nil {
		return 0, err
	}
	return n.CDF(x), nil
}

// NormalQuantile returns the value of a normal distribution
// with cumulative probability p
// (i.e., the inverse of the CDF).
func NormalQuantile(p, mu, sigma float64) (float64, error) {
	n, err := normal(mu, sigma)
	if err != nil {
		return 0, err
	}
	if !(p > 0 && p < 1) {
		return 0, calcerr.Validationf("probability must be in (0, 1), got %g", p)
	}
	return n.Quantile(p), nil
}

// NormalCategories returns the values of a normal distribution
// discretized in n categories of equal probability.
// Each category is represented by the quantile
// at the middle of its probability interval.
func NormalCategories(n int, mu, sigma float64) ([]float64, error) {
	d, err := normal(mu, sigma)
	if err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, calcerr.Validationf("invalid number of categories %d", n)
	}

	cats := make([]float64, n)
	for i := range cats {
		p := (float64(i) + 0.5) / float64(n)
		cats[i] = d.Quantile(p)
	}
	return cats, nil
}
