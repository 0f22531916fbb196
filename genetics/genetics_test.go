// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package genetics_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/js-arias/sciops/calcerr"
	"github.com/js-arias/sciops/genetics"
)

func TestHardyWeinberg(t *testing.T) {
	got, err := genetics.HardyWeinberg(0.7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := genetics.Genotypes{AA: 0.49, AB: 0.42, BB: 0.09}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	for _, p := range []float64{-0.1, 1.1} {
		if _, err := genetics.HardyWeinberg(p); !calcerr.Is(err, calcerr.Validation) {
			t.Errorf("p %g: got error %v, want a validation error", p, err)
		}
	}
}

func TestHardyWeinbergCounts(t *testing.T) {
	got, err := genetics.HardyWeinbergCounts(30, 50, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := genetics.Sample{
		P:        0.55,
		Q:        0.45,
		Observed: genetics.Genotypes{AA: 0.3, AB: 0.5, BB: 0.2},
		Expected: genetics.Genotypes{AA: 0.3025, AB: 0.495, BB: 0.2025},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	if _, err := genetics.HardyWeinbergCounts(0, 0, 0); !calcerr.Is(err, calcerr.Validation) {
		t.Errorf("zero counts: got error %v, want a validation error", err)
	}
	if _, err := genetics.HardyWeinbergCounts(-1, 2, 0); !calcerr.Is(err, calcerr.Validation) {
		t.Errorf("negative counts: got error %v, want a validation error", err)
	}
}

func TestPunnett(t *testing.T) {
	tests := map[string]struct {
		p1, p2 string
		want   []genetics.Offspring
	}{
		"heterozygotes": {
			p1: "Aa", p2: "Aa",
			want: []genetics.Offspring{
				{Genotype: "AA", Prob: 0.25},
				{Genotype: "Aa", Prob: 0.5},
				{Genotype: "aa", Prob: 0.25},
			},
		},
		"test cross": {
			p1: "aA", p2: "aa",
			want: []genetics.Offspring{
				{Genotype: "Aa", Prob: 0.5},
				{Genotype: "aa", Prob: 0.5},
			},
		},
		"homozygotes": {
			p1: "BB", p2: "bb",
			want: []genetics.Offspring{
				{Genotype: "Bb", Prob: 1},
			},
		},
	}

	for name, test := range tests {
		got, err := genetics.Punnett(test.p1, test.p2)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", name, diff)
		}
	}

	if _, err := genetics.Punnett("Aaa", "Aa"); !calcerr.Is(err, calcerr.Parse) {
		t.Errorf("invalid genotype: got error %v, want a parse error", err)
	}
}
