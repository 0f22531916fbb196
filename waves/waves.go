// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package waves generates simple periodic waveforms
// and draws them as ASCII plots.
package waves

import (
	"math"
	"strings"

	"github.com/js-arias/sciops/calcerr"
	"gonum.org/v1/gonum/floats"
)

// Times returns the sampling times
// of a wave:
// n evenly spaced values in [0, 1].
func Times(n int) ([]float64, error) {
	if n < 2 {
		return nil, calcerr.Validationf("at least 2 samples are required, got %d", n)
	}
	ts := floats.Span(make([]float64, n), 0, 1)
	ts[n-1] = 1
	return ts, nil
}

// Sine samples a sine wave of frequency freq
// (in cycles per unit time)
// at n times in [0, 1].
func Sine(freq float64, n int) (ts, ys []float64, err error) {
	ts, err = Times(n)
	if err != nil {
		return nil, nil, err
	}
	ys = make([]float64, len(ts))
	for i, t := range ts {
		ys[i] = math.Sin(2 * math.Pi * freq * t)
	}
	return ts, ys, nil
}

// Square samples a square wave of frequency freq
// at n times in [0, 1].
// The wave is 1 during the first duty fraction of each cycle,
// and -1 for the rest of the cycle.
func Square(freq float64, n int, duty float64) (ts, ys []float64, err error) {
	if !(duty >= 0 && duty <= 1) {
		return nil, nil, calcerr.Validationf("duty cycle must be between 0 and 1, got %g", duty)
	}
	ts, err = Times(n)
	if err != nil {
		return nil, nil, err
	}
	ys = make([]float64, len(ts))
	for i, t := range ts {
		ph := math.Mod(freq*t, 1)
		if ph < 0 {
			ph += 1
		}
		ys[i] = -1
		if ph < duty {
			ys[i] = 1
		}
	}
	return ts, ys, nil
}

// Plot draws the values as an ASCII plot
// with the given number of rows,
// with zero at the middle row.
// Each value is a column,
// marked with '*'.
// The first row is the top of the plot.
func Plot(ys []float64, height int) ([]string, error) {
	if height < 2 {
		return nil, calcerr.Validationf("plot height must be at least 2, got %d", height)
	}
	if len(ys) == 0 {
		return nil, calcerr.Validationf("no values to plot")
	}

	span := math.Max(math.Abs(floats.Min(ys)), math.Abs(floats.Max(ys)))
	if span == 0 {
		span = 1
	}

	level := make([]int, len(ys))
	for i, y := range ys {
		r := y/(2*span) + 0.5
		level[i] = int(r * float64(height-1))
	}

	rows := make([]string, 0, height)
	for l := height - 1; l >= 0; l-- {
		var b strings.Builder
		for _, v := range level {
			if v == l {
				b.WriteByte('*')
				continue
			}
			b.WriteByte(' ')
		}
		rows = append(rows, b.String())
	}
	return rows, nil
}
