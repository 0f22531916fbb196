// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package molarity implements a command to calculate
// the molarity of a solution.
package molarity

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/chem"
	"github.com/js-arias/sciops/cmd/sciops/args"
	"github.com/js-arias/sciops/cmd/sciops/session"
)

var Command = &command.Command{
	Usage: "molarity <moles> <volume>",
	Short: "calculate the molarity of a solution",
	Long: `
Command molarity calculates the concentration of a solution, in mol/L (M).

The first argument of the command is the amount of solute, in mol, and the
second is the volume of the solution, in L.
	`,
	Run: run,
}

func run(c *command.Command, a []string) error {
	if len(a) < 2 {
		return c.UsageError("expecting moles and volume")
	}
	n, err := args.Float("moles", a[0])
	if err != nil {
		return err
	}
	v, err := args.Float("volume", a[1])
	if err != nil {
		return err
	}
	m, err := chem.Molarity(n, v)
	if err != nil {
		return err
	}

	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	s.Out.Printf("Molarity = %s (%g mol in %g L)", s.Out.Value(fmt.Sprintf("%.6g M", m)), n, v)
	return nil
}
