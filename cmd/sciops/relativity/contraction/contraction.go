// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package contraction implements a command to calculate
// the length contraction of a moving object.
package contraction

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/args"
	"github.com/js-arias/sciops/cmd/sciops/session"
	"github.com/js-arias/sciops/relativity"
)

var Command = &command.Command{
	Usage: "contraction [--c] <proper-length> <velocity>",
	Short: "calculate the length contraction of a moving object",
	Long: `
Command contraction calculates the length of an object that moves at a given
velocity: L = L0 / gamma.

The first argument of the command is the proper length (L0), in m, and the
second is the velocity, in m/s. If the flag --c is defined, the velocity is
read as a fraction of the speed of light.
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
		return c.UsageError("expecting proper length and velocity")
	}
	l0, err := args.Float("proper length", a[0])
	if err != nil {
		return err
	}
	v, err := args.Float("velocity", a[1])
	if err != nil {
		return err
	}
	beta := relativity.Beta(v, fracFlag)
	l, err := relativity.LengthContraction(l0, beta)
	if err != nil {
		return err
	}

	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	s.Out.Printf("β = %.6g", beta)
	s.Out.Printf("L = %s", s.Out.Value(fmt.Sprintf("%.10g m", l)))
	return nil
}
