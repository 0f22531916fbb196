// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package orbit implements a command to calculate
// the period of a Keplerian orbit.
package orbit

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/args"
	"github.com/js-arias/sciops/cmd/sciops/session"
	"github.com/js-arias/sciops/mech"
)

var Command = &command.Command{
	Usage: "orbit [--mu <value>] [--body <name>] <semi-major-axis>",
	Short: "calculate the period of an orbit",
	Long: `
Command orbit calculates the period of a Keplerian two-body orbit,
T = 2*pi*sqrt(a^3/mu).

The argument of the command is the semi-major axis of the orbit, in m.

The standard gravitational parameter of the central body (mu = G*M), in
m^3/s^2, can be given with the flag --mu, or taken from a body preset with
the flag --body. See "sciops help mech body-presets".
	`,
	SetFlags: setFlags,
	Run:      run,
}

var muFlag float64
var bodyFlag string

func setFlags(c *command.Command) {
	c.Flags().Float64Var(&muFlag, "mu", 0, "")
	c.Flags().StringVar(&bodyFlag, "body", "", "")
}

func run(c *command.Command, a []string) error {
	if len(a) < 1 {
		return c.UsageError("expecting semi-major axis")
	}
	sma, err := args.Float("semi-major axis", a[0])
	if err != nil {
		return err
	}

	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	mu := muFlag
	if session.Explicit(bodyFlag) || mu == 0 {
		b, ok, err := s.Body(bodyFlag)
		if err != nil {
			return err
		}
		if ok {
			mu = b.Mu
			s.Out.Printf("Using %s: mu = %.6g m^3/s^2", b.Name, mu)
		}
	}

	t, err := mech.OrbitPeriod(sma, mu)
	if err != nil {
		return err
	}
	s.Out.Printf("T = %s (%.6g h, %.6g days)", s.Out.Value(fmt.Sprintf("%.6g s", t)), t/3600, t/86400)
	return nil
}
