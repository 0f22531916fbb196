// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package projectile implements a command to calculate
// the trajectory of a projectile.
package projectile

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/args"
	"github.com/js-arias/sciops/cmd/sciops/session"
	"github.com/js-arias/sciops/mech"
)

var Command = &command.Command{
	Usage: `projectile [--y0 <height>] [--g <acceleration>] [--body <name>]
	<speed> <angle>`,
	Short: "calculate the trajectory of a projectile",
	Long: `
Command projectile calculates the time of flight, the horizontal range, and
the maximum height of a projectile in a uniform gravitational field, without
air resistance.

The first argument of the command is the initial speed, in m/s, and the
second is the launch angle above the horizontal, in degrees.

By default the projectile is launched from the ground. Use the flag --y0 to
set the initial height, in m.

The gravitational acceleration, in m/s^2, can be given with the flag --g, or
taken from a body preset with the flag --body. See "sciops help mech
body-presets".
	`,
	SetFlags: setFlags,
	Run:      run,
}

var y0Flag float64
var gFlag float64
var bodyFlag string

func setFlags(c *command.Command) {
	c.Flags().Float64Var(&y0Flag, "y0", 0, "")
	c.Flags().Float64Var(&gFlag, "g", 0, "")
	c.Flags().StringVar(&bodyFlag, "body", "", "")
}

func run(c *command.Command, a []string) error {
	if len(a) < 2 {
		return c.UsageError("expecting speed and angle")
	}
	v0, err := args.Float("speed", a[0])
	if err != nil {
		return err
	}
	angle, err := args.Float("angle", a[1])
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

	t, err := mech.Projectile(v0, angle, y0Flag, g)
	if err != nil {
		return err
	}
	return s.Out.Table("Projectile motion (no drag)", []string{"Quantity", "Value"}, [][]string{
		{"Time of flight", fmt.Sprintf("%.4g s", t.Flight)},
		{"Horizontal range", fmt.Sprintf("%.4g m", t.Range)},
		{"Maximum height", fmt.Sprintf("%.4g m", t.MaxHeight)},
		{"vx0", fmt.Sprintf("%.4g m/s", t.VX0)},
		{"vy0", fmt.Sprintf("%.4g m/s", t.VY0)},
	})
}
