// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package gamma implements a command to calculate
// the Lorentz factor of a velocity.
package gamma

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/args"
	"github.com/js-arias/sciops/cmd/sciops/session"
	"github.com/js-arias/sciops/relativity"
)

var Command = &command.Command{
	Usage: "gamma [--c] <velocity>",
	Short: "calculate the Lorentz factor",
	Long: `
Command gamma calculates the Lorentz factor 1/sqrt(1 - v^2/c^2).

The argument of the command is the velocity, in m/s. If the flag --c is
defined, the velocity is read as a fraction of the speed of light.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var fracFlag bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&fracFlag, "c", false, "")
}

func run(c *command.Command, a []string) error {
	if len(a) < 1 {
		return c.UsageError("expecting velocity")
	}
	v, err := args.Float("velocity", a[0])
	if err != nil {
		return err
	}
	beta := relativity.Beta(v, fracFlag)
	g, err := relativity.Gamma(beta)
	if err != nil {
		return err
	}

	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	s.Out.Printf("β = %.6g", beta)
	s.Out.Printf("γ = %s", s.Out.Value(fmt.Sprintf("%.10g", g)))
	return nil
}
