// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package genetics implements simple tools
// of population and Mendelian genetics
// for a single diploid locus.
package genetics

import (
	"slices"
	"strings"

	"github.com/js-arias/sciops/calcerr"
)

// Genotypes are the frequencies of the genotypes
// of a bi-allelic locus.
type Genotypes struct {
	AA float64
	AB float64
	BB float64
}

// HardyWeinberg returns the expected genotype frequencies
// under Hardy-Weinberg equilibrium
// for a frequency p of allele A.
func HardyWeinberg(p float64) (Genotypes, error) {
	if !(p >= 0 && p <= 1) {
		return Genotypes{}, calcerr.Validationf("allele frequency must be between 0 and 1, got %g", p)
	}
	q := 1 - p
	return Genotypes{
		AA: p * p,
		AB: 2 * p * q,
		BB: q * q,
	}, nil
}

// Sample is a sample of genotype counts
// compared with the Hardy-Weinberg expectation.
type Sample struct {
	// Estimated allele frequencies.
	P, Q float64

	Observed Genotypes
	Expected Genotypes
}

// HardyWeinbergCounts estimates the allele frequency
// from the genotype counts,
// as p = (2·AA + AB) / 2N,
// and returns the observed and expected genotype frequencies.
func HardyWeinbergCounts(aa, ab, bb int) (Sample, error) {
	if aa < 0 || ab < 0 || bb < 0 {
		return Sample{}, calcerr.Validationf("genotype counts must be non-negative")
	}
	n := aa + ab + bb
	if n == 0 {
		return Sample{}, calcerr.Validationf("total count is zero")
	}

	nf := float64(n)
	p := float64(2*aa+ab) / (2 * nf)
	exp, err := HardyWeinberg(p)
	if err != nil {
		return Sample{}, err
	}
	return Sample{
		P: p,
		Q: 1 - p,
		Observed: Genotypes{
			AA: float64(aa) / nf,
			AB: float64(ab) / nf,
			BB: float64(bb) / nf,
		},
		Expected: exp,
	}, nil
}

// Offspring is a genotype in a Punnett square.
type Offspring struct {
	Genotype string
	Prob     float64
}

// Punnett returns the offspring genotypes,
// and their probabilities,
// of a cross between two parents.
// Genotypes are two characters,
// one per allele
// (for example "Aa").
// The alleles of the offspring genotypes are sorted,
// so "aA" and "Aa" are the same genotype.
func Punnett(parent1, parent2 string) ([]Offspring, error) {
	g1, err := alleles(parent1)
	if err != nil {
		return nil, err
	}
	g2, err := alleles(parent2)
	if err != nil {
		return nil, err
	}

	count := make(map[string]int)
	for _, a := range g1 {
		for _, b := range g2 {
			child := []rune{a, b}
			slices.Sort(child)
			count[string(child)]++
		}
	}

	genotypes := make([]string, 0, len(count))
	for g := range count {
		genotypes = append(genotypes, g)
	}
	slices.Sort(genotypes)

	off := make([]Offspring, 0, len(genotypes))
	for _, g := range genotypes {
		off = append(off, Offspring{
			Genotype: g,
			Prob:     float64(count[g]) / 4,
		})
	}
	return off, nil
}

func alleles(genotype string) ([]rune, error) {
	g := []rune(strings.TrimSpace(genotype))
	if len(g) != 2 {
		return nil, calcerr.Parsef("invalid genotype %q", genotype).WithHint("a genotype must be 2 characters, e.g. 'Aa' or 'aa'")
	}
	return g, nil
}
