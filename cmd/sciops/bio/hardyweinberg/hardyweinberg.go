// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package hardyweinberg implements a command to calculate
// the Hardy-Weinberg equilibrium of a bi-allelic locus.
package hardyweinberg

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/args"
	"github.com/js-arias/sciops/cmd/sciops/session"
	"github.com/js-arias/sciops/genetics"
)

var Command = &command.Command{
	Usage: "hardy-weinberg [--p <frequency>] [--aa <count>] [--ab <count>] [--bb <count>]",
	Short: "calculate the Hardy-Weinberg equilibrium",
	Long: `
Command hardy-weinberg calculates the expected genotype frequencies of a
bi-allelic locus under Hardy-Weinberg equilibrium:

	AA: p^2
	AB: 2pq
	BB: q^2

Use the flag --p to set the frequency of allele A.

If the flag --p is not defined, the frequency is estimated from the genotype
counts, given with the flags --aa, --ab, and --bb, as:

	p = (2*AA + AB) / 2N

When genotype counts are given, the observed genotype frequencies are
compared with the expected ones.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var pFlag string
var aaFlag, abFlag, bbFlag int

func setFlags(c *command.Command) {
	c.Flags().StringVar(&pFlag, "p", "", "")
	c.Flags().IntVar(&aaFlag, "aa", 0, "")
	c.Flags().IntVar(&abFlag, "ab", 0, "")
	c.Flags().IntVar(&bbFlag, "bb", 0, "")
}

func run(c *command.Command, _ []string) error {
	counts := aaFlag+abFlag+bbFlag != 0
	if pFlag == "" && !counts {
		return c.UsageError("expecting --p or genotype counts")
	}

	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	var exp genetics.Genotypes
	var sample genetics.Sample
	if pFlag != "" {
		p, err := args.Float("allele frequency", pFlag)
		if err != nil {
			return err
		}
		exp, err = genetics.HardyWeinberg(p)
		if err != nil {
			return err
		}
	}
	if counts {
		sample, err = genetics.HardyWeinbergCounts(aaFlag, abFlag, bbFlag)
		if err != nil {
			return err
		}
		if pFlag == "" {
			exp = sample.Expected
			s.Out.Printf("Estimated p = %.6g, q = %.6g from genotype counts.", sample.P, sample.Q)
		}
	}

	if err := s.Out.Table("Hardy-Weinberg equilibrium", []string{"Genotype", "Expected frequency"}, [][]string{
		{"AA", fmt.Sprintf("%.6g", exp.AA)},
		{"AB", fmt.Sprintf("%.6g", exp.AB)},
		{"BB", fmt.Sprintf("%.6g", exp.BB)},
	}); err != nil {
		return err
	}
	if !counts {
		return nil
	}

	obs := sample.Observed
	return s.Out.Table("Observed vs expected (frequencies)", []string{"Genotype", "Observed", "Expected"}, [][]string{
		{"AA", fmt.Sprintf("%.6g", obs.AA), fmt.Sprintf("%.6g", exp.AA)},
		{"AB", fmt.Sprintf("%.6g", obs.AB), fmt.Sprintf("%.6g", exp.AB)},
		{"BB", fmt.Sprintf("%.6g", obs.BB), fmt.Sprintf("%.6g", exp.BB)},
	})
}
