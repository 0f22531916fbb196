// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package stats

import (
	"math"
	"slices"

	"github.com/js-arias/sciops/calcerr"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Hist is a histogram of equal width bins.
type Hist struct {
	// Edges of the bins,
	// there is one more edge than bins.
	Edges []float64

	// Counts of values in each bin.
	Counts []int
}

// Bins returns the number of bins.
func (h Hist) Bins() int {
	return len(h.Counts)
}

// Max returns the largest count.
func (h Hist) Max() int {
	m := 0
	for _, c := range h.Counts {
		if c > m {
			m = c
		}
	}
	return m
}

// Histogram returns a histogram of a sample
// with the given number of equal width bins
// covering the range of the sample.
// All bins are half open,
// except the last one that includes the maximum.
// If all values are equal,
// the range is extended by 0.5 on each side.
func Histogram(xs []float64, bins int) (Hist, error) {
	if len(xs) == 0 {
		return Hist{}, calcerr.Validationf("no data provided")
	}
	if bins < 1 {
		return Hist{}, calcerr.Validationf("invalid number of bins %d", bins)
	}
	if err := checkFinite(xs); err != nil {
		return Hist{}, err
	}

	s := slices.Clone(xs)
	slices.Sort(s)
	lo, hi := s[0], s[len(s)-1]
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}

	edges := floats.Span(make([]float64, bins+1), lo, hi)
	edges[bins] = hi

	// stat.Histogram excludes values at the last divider
	div := slices.Clone(edges)
	div[bins] = math.Nextafter(hi, math.Inf(1))
	counts := stat.Histogram(nil, div, s, nil)

	h := Hist{
		Edges:  edges,
		Counts: make([]int, bins),
	}
	for i, c := range counts {
		h.Counts[i] = int(c)
	}
	return h, nil
}
