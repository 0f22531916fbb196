// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package energy implements a command to calculate
// the relativistic energy of a moving mass.
package energy

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/args"
	"github.com/js-arias/sciops/cmd/sciops/session"
	"github.com/js-arias/sciops/relativity"
)

var Command = &command.Command{
	Usage: "energy [--c] <mass> <velocity>",
	Short: "calculate the relativistic energy of a mass",
	Long: `
Command energy calculates the rest energy (m*c^2), the total energy
(gamma*m*c^2), and the kinetic energy ((gamma-1)*m*c^2) of a moving mass.

The first argument of the command is the rest mass, in kg, and the second is
the velocity, in m/s. If the flag --c is defined, the velocity is read as a
fraction of the speed of light.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var fracFlag bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&fracFlag, "c", false, "")
}

func run(c *command.Command, a []string) error {
	if len(a) < 2 {
		return c.UsageError("expecting mass and velocity")
	}
	m, err := args.Float("mass", a[0])
	if err != nil {
		return err
	}
	v, err := args.Float("velocity", a[1])
	if err != nil {
		return err
	}
	beta := relativity.Beta(v, fracFlag)
	e, err := relativity.Energy(m, beta)
	if err != nil {
		return err
	}

	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	s.Out.Printf("β = %.6g", beta)
	s.Out.Printf("E_rest = %.6g J", e.Rest)
	s.Out.Printf("E_total = %s", s.Out.Value(fmt.Sprintf("%.6g J", e.Total)))
	s.Out.Printf("Kinetic = %s", s.Out.Value(fmt.Sprintf("%.6g J", e.Kinetic)))
	return nil
}
