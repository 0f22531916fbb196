// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package waves_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/js-arias/sciops/calcerr"
	"github.com/js-arias/sciops/waves"
)

func TestSine(t *testing.T) {
	ts, ys, err := waves.Sine(1, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	opt := cmpopts.EquateApprox(0, 1e-12)
	if diff := cmp.Diff([]float64{0, 0.25, 0.5, 0.75, 1}, ts, opt); diff != "" {
		t.Errorf("times mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{0, 1, 0, -1, 0}, ys, opt); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}

	if _, _, err := waves.Sine(1, 1); !calcerr.Is(err, calcerr.Validation) {
		t.Errorf("one sample: got error %v, want a validation error", err)
	}
}

func TestSquare(t *testing.T) {
	_, ys, err := waves.Square(1, 4, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]float64{1, 1, -1, 1}, ys); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	_, ys, _ = waves.Square(2, 9, 0.25)
	want := []float64{1, -1, -1, -1, 1, -1, -1, -1, 1}
	if diff := cmp.Diff(want, ys); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	if _, _, err := waves.Square(1, 10, 1.5); !calcerr.Is(err, calcerr.Validation) {
		t.Errorf("invalid duty: got error %v, want a validation error", err)
	}
}

func TestPlot(t *testing.T) {
	rows, err := waves.Plot([]float64{1, 1, -1, 1}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"** *",
		"    ",
		"  * ",
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	// a flat line at zero is at the middle
	rows, _ = waves.Plot([]float64{0, 0}, 5)
	if rows[2] != "**" {
		t.Errorf("flat line: got %q at middle row", rows[2])
	}

	_, ys, _ := waves.Sine(3, 40)
	rows, _ = waves.Plot(ys, 10)
	if len(rows) != 10 {
		t.Fatalf("rows: got %d, want 10", len(rows))
	}
	for i := range ys {
		n := 0
		for _, r := range rows {
			if r[i] == '*' {
				n++
			}
		}
		if n != 1 {
			t.Errorf("column %d: got %d marks, want 1", i, n)
		}
	}

	if _, err := waves.Plot(nil, 10); !calcerr.Is(err, calcerr.Validation) {
		t.Errorf("no values: got error %v, want a validation error", err)
	}
}
