// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package pendulum implements a command to calculate
// the period of a simple pendulum.
package pendulum

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/args"
	"github.com/js-arias/sciops/cmd/sciops/session"
	"github.com/js-arias/sciops/mech"
)

var Command = &command.Command{
	Usage: "pendulum [--g <acceleration>] [--body <name>] <length>",
	Short: "calculate the period of a simple pendulum",
	Long: `
Command pendulum calculates the period of a simple pendulum, using the small
angle approximation T = 2*pi*sqrt(L/g).

The argument of the command is the length of the pendulum, in m.

The gravitational acceleration, in m/s^2, can be given with the flag --g, or
taken from a body preset with the flag --body. See "sciops help mech
body-presets".
	`,
	SetFlags: setFlags,
	Run:      run,
}

var gFlag float64
var bodyFlag string

func setFlags(c *command.Command) {
	c.Flags().Float64Var(&gFlag, "g", 0, "")
	c.Flags().StringVar(&bodyFlag, "body", "", "")
}

func run(c *command.Command, a []string) error {
	if len(a) < 1 {
		return c.UsageError("expecting length")
	}
	l, err := args.Float("length", a[0])
	if err != nil {
		return err
	}

	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	g := gFlag
	if session.Explicit(bodyFlag) || g == 0 {
		b, ok, err := s.Body(bodyFlag)
		if err != nil {
			return err
		}
		if ok {
			g = b.G
			s.Out.Printf("Using %s: g = %.4g m/s^2", b.Name, g)
		}
	}

	t, err := mech.PendulumPeriod(l, g)
	if err != nil {
		return err
	}
	s.Out.Printf("T = %s", s.Out.Value(fmt.Sprintf("%.6g s", t)))
	return nil
}
