// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package punnett implements a command to calculate
// a single locus Punnett square.
package punnett

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/session"
	"github.com/js-arias/sciops/genetics"
)

var Command = &command.Command{
	Usage: "punnett <genotype> <genotype>",
	Short: "calculate a single locus Punnett square",
	Long: `
Command punnett calculates the offspring genotypes, and their probabilities,
of a cross between two diploid parents at a single locus.

The arguments of the command are the genotypes of the parents, as two
characters, one per allele; for example:

	sciops bio punnett Aa Aa
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 2 {
		return c.UsageError("expecting two genotypes")
	}

	off, err := genetics.Punnett(args[0], args[1])
	if err != nil {
		return err
	}

	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	rows := make([][]string, 0, len(off))
	for _, o := range off {
		rows = append(rows, []string{o.Genotype, fmt.Sprintf("%.6g", o.Prob)})
	}
	return s.Out.Table("Punnett square outcome", []string{"Genotype", "Probability"}, rows)
}
