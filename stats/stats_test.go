// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package stats_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/js-arias/sciops/calcerr"
	"github.com/js-arias/sciops/stats"
)

var approx = cmpopts.EquateApprox(0, 1e-6)

func TestDescribe(t *testing.T) {
	tests := map[string]struct {
		xs   []float64
		want stats.Summary
	}{
		"even": {
			xs:   []float64{4, 1, 3, 2},
			want: stats.Summary{Count: 4, Mean: 2.5, Std: 1.2909944, Min: 1, Max: 4, Median: 2.5},
		},
		"odd": {
			xs:   []float64{5, -1, 2},
			want: stats.Summary{Count: 3, Mean: 2, Std: 3, Min: -1, Max: 5, Median: 2},
		},
		"single": {
			xs:   []float64{7.5},
			want: stats.Summary{Count: 1, Mean: 7.5, Std: 0, Min: 7.5, Max: 7.5, Median: 7.5},
		},
	}

	for name, test := range tests {
		got, err := stats.Describe(test.xs)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if diff := cmp.Diff(test.want, got, approx); diff != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", name, diff)
		}
	}

	if _, err := stats.Describe(nil); !calcerr.Is(err, calcerr.Validation) {
		t.Errorf("empty data: got error %v, want a validation error", err)
	}
}

func TestMedianKeepsData(t *testing.T) {
	xs := []float64{3, 1, 2}
	if got := stats.Median(xs); got != 2 {
		t.Errorf("median: got %g, want 2", got)
	}
	if diff := cmp.Diff([]float64{3, 1, 2}, xs); diff != "" {
		t.Errorf("data modified (-want +got):\n%s", diff)
	}
}

func TestNormal(t *testing.T) {
	pdf, err := stats.NormalPDF(0, 0, 1)
	if err != nil {
		t.Fatalf("pdf: unexpected error: %v", err)
	}
	if math.Abs(pdf-0.3989422804) > 1e-9 {
		t.Errorf("pdf: got %.10f, want 0.3989422804", pdf)
	}

	pdf, _ = stats.NormalPDF(12, 10, 2)
	if math.Abs(pdf-0.1209853623) > 1e-9 {
		t.Errorf("pdf: got %.10f, want 0.1209853623", pdf)
	}

	cdf, err := stats.NormalCDF(1.96, 0, 1)
	if err != nil {
		t.Fatalf("cdf: unexpected error: %v", err)
	}
	if math.Abs(cdf-0.9750021049) > 1e-9 {
		t.Errorf("cdf: got %.10f, want 0.9750021049", cdf)
	}

	q, err := stats.NormalQuantile(0.975, 0, 1)
	if err != nil {
		t.Fatalf("quantile: unexpected error: %v", err)
	}
	if math.Abs(q-1.959963985) > 1e-8 {
		t.Errorf("quantile: got %.10f, want 1.959963985", q)
	}

	// quantile is the inverse of the CDF
	for _, x := range []float64{-3, -0.5, 0, 1.25, 4} {
		p, _ := stats.NormalCDF(x, 5, 3)
		q, _ := stats.NormalQuantile(p, 5, 3)
		if math.Abs(q-x) > 1e-8 {
			t.Errorf("quantile(cdf(%g)): got %g", x, q)
		}
	}
}

func TestNormalErrors(t *testing.T) {
	for _, sigma := range []float64{0, -1, math.NaN()} {
		if _, err := stats.NormalPDF(0, 0, sigma); !calcerr.Is(err, calcerr.Validation) {
			t.Errorf("pdf sigma %g: got error %v, want a validation error", sigma, err)
		}
		if _, err := stats.NormalCDF(0, 0, sigma); !calcerr.Is(err, calcerr.Validation) {
			t.Errorf("cdf sigma %g: got error %v, want a validation error", sigma, err)
		}
	}
	for _, p := range []float64{0, 1, -0.1, 2} {
		if _, err := stats.NormalQuantile(p, 0, 1); !calcerr.Is(err, calcerr.Validation) {
			t.Errorf("quantile p %g: got error %v, want a validation error", p, err)
		}
	}
}

func TestNormalCategories(t *testing.T) {
	got, err := stats.NormalCategories(2, 0, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{-0.6744897502, 0.6744897502}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	if _, err := stats.NormalCategories(0, 0, 1); !calcerr.Is(err, calcerr.Validation) {
		t.Errorf("zero categories: got error %v, want a validation error", err)
	}
}

func TestLinearRegression(t *testing.T) {
	tests := map[string]struct {
		xs, ys []float64
		want   stats.Regression
	}{
		"positive": {
			xs:   []float64{1, 2, 3, 4},
			ys:   []float64{3, 5, 7, 9},
			want: stats.Regression{Slope: 2, Intercept: 1, R: 1, R2: 1},
		},
		"negative": {
			xs:   []float64{1, 2, 3, 4},
			ys:   []float64{9, 7, 5, 3},
			want: stats.Regression{Slope: -2, Intercept: 11, R: -1, R2: 1},
		},
		"constant y": {
			xs:   []float64{1, 2, 3},
			ys:   []float64{4, 4, 4},
			want: stats.Regression{Slope: 0, Intercept: 4, R: 0, R2: 0},
		},
		"noisy": {
			xs:   []float64{0, 1, 2},
			ys:   []float64{0, 2, 1},
			want: stats.Regression{Slope: 0.5, Intercept: 0.5, R: 0.5, R2: 0.25},
		},
	}

	for name, test := range tests {
		got, err := stats.LinearRegression(test.xs, test.ys)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if diff := cmp.Diff(test.want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", name, diff)
		}
	}
}

func TestLinearRegressionErrors(t *testing.T) {
	tests := map[string]struct {
		xs, ys []float64
	}{
		"one point":    {[]float64{1}, []float64{1}},
		"constant x":   {[]float64{2, 2, 2}, []float64{1, 2, 3}},
		"length":       {[]float64{1, 2, 3}, []float64{1, 2}},
		"not a number": {[]float64{1, math.NaN()}, []float64{1, 2}},
	}
	for name, test := range tests {
		if _, err := stats.LinearRegression(test.xs, test.ys); !calcerr.Is(err, calcerr.Validation) {
			t.Errorf("%s: got error %v, want a validation error", name, err)
		}
	}
}

func TestCombineUncertainty(t *testing.T) {
	got, err := stats.CombineUncertainty([]float64{3, 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-5) > 1e-12 {
		t.Errorf("got %g, want 5", got)
	}
	if _, err := stats.CombineUncertainty(nil); !calcerr.Is(err, calcerr.Validation) {
		t.Errorf("empty: got error %v, want a validation error", err)
	}
}

func TestHistogram(t *testing.T) {
	tests := map[string]struct {
		xs   []float64
		bins int
		want stats.Hist
	}{
		"two bins": {
			xs:   []float64{5, 1, 2, 3, 2, 4},
			bins: 2,
			want: stats.Hist{Edges: []float64{1, 3, 5}, Counts: []int{3, 3}},
		},
		"max in last bin": {
			xs:   []float64{0, 10},
			bins: 5,
			want: stats.Hist{Edges: []float64{0, 2, 4, 6, 8, 10}, Counts: []int{1, 0, 0, 0, 1}},
		},
		"constant": {
			xs:   []float64{2, 2, 2},
			bins: 4,
			want: stats.Hist{Edges: []float64{1.5, 1.75, 2, 2.25, 2.5}, Counts: []int{0, 0, 3, 0}},
		},
	}

	for name, test := range tests {
		got, err := stats.Histogram(test.xs, test.bins)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if diff := cmp.Diff(test.want, got, approx); diff != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", name, diff)
		}

		sum := 0
		for _, c := range got.Counts {
			sum += c
		}
		if sum != len(test.xs) {
			t.Errorf("%s: counts sum %d, want %d", name, sum, len(test.xs))
		}
	}

	if _, err := stats.Histogram([]float64{1}, 0); !calcerr.Is(err, calcerr.Validation) {
		t.Errorf("zero bins: got error %v, want a validation error", err)
	}
}
