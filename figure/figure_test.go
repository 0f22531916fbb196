// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package figure_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/js-arias/sciops/calcerr"
	"github.com/js-arias/sciops/figure"
	"github.com/js-arias/sciops/stats"
	"github.com/js-arias/sciops/waves"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func testPNG(t testing.TB, name string) {
	t.Helper()

	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("unable to read figure: %v", err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Errorf("file %q is not a PNG image", name)
	}
}

func TestLine(t *testing.T) {
	ts, ys, err := waves.Sine(2, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	name := filepath.Join(t.TempDir(), "sine.png")
	if err := figure.Line(name, ts, ys, "t", "y"); err != nil {
		t.Fatalf("unable to save figure: %v", err)
	}
	testPNG(t, name)

	if err := figure.Line(name, ts, ys[1:], "t", "y"); !calcerr.Is(err, calcerr.Validation) {
		t.Errorf("different lengths: got error %v, want a validation error", err)
	}
}

func TestHistogram(t *testing.T) {
	h, err := stats.Histogram([]float64{1, 2, 2, 3, 3, 3, 4, 5}, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, s := range figure.Schemes() {
		g, err := figure.Scheme(s)
		if err != nil {
			t.Fatalf("scheme %q: unexpected error: %v", s, err)
		}
		name := filepath.Join(t.TempDir(), s+".png")
		if err := figure.Histogram(name, h, "value", g); err != nil {
			t.Fatalf("scheme %q: unable to save figure: %v", s, err)
		}
		testPNG(t, name)
	}

	if err := figure.Histogram(filepath.Join(t.TempDir(), "empty.png"), stats.Hist{}, "value", nil); !calcerr.Is(err, calcerr.Validation) {
		t.Errorf("empty histogram: got error %v, want a validation error", err)
	}
}

func TestScheme(t *testing.T) {
	if _, err := figure.Scheme("Iridescent"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := figure.Scheme("sepia"); !calcerr.Is(err, calcerr.NotFound) {
		t.Errorf("unknown scheme: got error %v, want a not found error", err)
	}
}
