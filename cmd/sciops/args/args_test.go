// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package args_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/js-arias/sciops/calcerr"
	"github.com/js-arias/sciops/cmd/sciops/args"
)

func TestFloat(t *testing.T) {
	tests := map[string]struct {
		text string
		want float64
	}{
		"integer":    {"12", 12},
		"negative":   {"-3.5", -3.5},
		"exponent":   {"6.674e-11", 6.674e-11},
		"whitespace": {" 2.5 ", 2.5},
	}

	for name, test := range tests {
		v, err := args.Float("value", test.text)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if v != test.want {
			t.Errorf("%s: got %g, want %g", name, v, test.want)
		}
	}

	for _, text := range []string{"", "abc", "1,5", "12m"} {
		if _, err := args.Float("value", text); !calcerr.Is(err, calcerr.Parse) {
			t.Errorf("float %q: got error %v, want a parse error", text, err)
		}
	}
}

func TestInt(t *testing.T) {
	v, err := args.Int("count", "42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 42 {
		t.Errorf("int: got %d, want %d", v, 42)
	}

	if _, err := args.Int("count", "4.2"); !calcerr.Is(err, calcerr.Parse) {
		t.Errorf("int: got error %v, want a parse error", err)
	}
}

func TestFloats(t *testing.T) {
	got, err := args.Floats("value", []string{"1", "2,3", "4,"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{1, 2, 3, 4}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("floats: mismatch (-want +got):\n%s", diff)
	}

	if _, err := args.Floats("value", []string{"1", "x"}); !calcerr.Is(err, calcerr.Parse) {
		t.Errorf("floats: got error %v, want a parse error", err)
	}
	if _, err := args.Floats("value", nil); !calcerr.Is(err, calcerr.Validation) {
		t.Errorf("empty floats: got error %v, want a validation error", err)
	}
}
