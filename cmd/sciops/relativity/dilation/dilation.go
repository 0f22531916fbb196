// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package dilation implements a command to calculate
// the time dilation of a moving clock.
package dilation

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/args"
	"github.com/js-arias/sciops/cmd/sciops/session"
	"github.com/js-arias/sciops/relativity"
)

var Command = &command.Command{
	Usage: "dilation [--c] <proper-time> <velocity>",
	Short: "calculate the time dilation of a moving clock",
	Long: `
Command dilation calculates the time interval measured by an observer for
which a clock moves at a given velocity: t = gamma * tau.

The first argument of the command is the proper time interval (tau), in s,
and the second is the velocity, in m/s. If the flag --c is defined, the
velocity is read as a fraction of the speed of light.
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
		return c.UsageError("expecting proper time and velocity")
	}
	tau, err := args.Float("proper time", a[0])
	if err != nil {
		return err
	}
	v, err := args.Float("velocity", a[1])
	if err != nil {
		return err
	}
	beta := relativity.Beta(v, fracFlag)
	t, err := relativity.TimeDilation(tau, beta)
	if err != nil {
		return err
	}

	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	s.Out.Printf("β = %.6g", beta)
	s.Out.Printf("Δt = %s", s.Out.Value(fmt.Sprintf("%.10g s", t)))
	return nil
}
