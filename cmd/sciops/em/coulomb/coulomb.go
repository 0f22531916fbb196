// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package coulomb implements a command to calculate
// the electrostatic force between two charges.
package coulomb

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/args"
	"github.com/js-arias/sciops/cmd/sciops/session"
	"github.com/js-arias/sciops/em"
)

var Command = &command.Command{
	Usage: "coulomb <charge> <charge> <distance>",
	Short: "calculate the force between two charges",
	Long: `
Command coulomb uses Coulomb's law, F = k*|q1*q2|/r^2, to calculate the
electrostatic force between two point charges.

The first two arguments of the command are the charges, in C, and the third
is the separation distance, in m. If the first charge is negative, precede
the arguments with "--", for example:

	sciops em coulomb -- -1e-6 2e-6 0.05
	`,
	Run: run,
}

func run(c *command.Command, a []string) error {
	if len(a) < 3 {
		return c.UsageError("expecting two charges and a distance")
	}
	q1, err := args.Float("charge", a[0])
	if err != nil {
		return err
	}
	q2, err := args.Float("charge", a[1])
	if err != nil {
		return err
	}
	r, err := args.Float("distance", a[2])
	if err != nil {
		return err
	}
	f, err := em.Coulomb(q1, q2, r)
	if err != nil {
		return err
	}

	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	kind := "attractive"
	if f.Repulsive {
		kind = "repulsive"
	}
	s.Out.Printf("F = %s (%s)", s.Out.Value(fmt.Sprintf("%.6g N", f.Magnitude)), kind)
	return nil
}
