// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package grav implements a command to calculate
// the gravitational time dilation.
package grav

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/calcerr"
	"github.com/js-arias/sciops/cmd/sciops/session"
	"github.com/js-arias/sciops/relativity"
)

var Command = &command.Command{
	Usage: `grav [--body <name>] [--altitude <height>]
	[--mass <kg> --radius <m>]`,
	Short: "calculate the gravitational time dilation",
	Long: `
Command grav calculates the gravitational time dilation outside a
non-rotating mass (Schwarzschild solution):

	dtau/dt = sqrt(1 - 2GM/(r c^2))

The result is the proper time elapsed per unit of time of a far-away
observer.

The mass and distance can be given with the flags --mass, in kg, and
--radius, the distance from the center of the mass, in m. Both flags must be
defined.

Alternatively, they can be taken from a body preset with the flag --body. In
that case, the distance is the radius of the body, plus the altitude given
with the flag --altitude, in m. See "sciops help mech body-presets".
	`,
	SetFlags: setFlags,
	Run:      run,
}

var bodyFlag string
var altFlag float64
var massFlag float64
var radiusFlag float64

func setFlags(c *command.Command) {
	c.Flags().StringVar(&bodyFlag, "body", "", "")
	c.Flags().Float64Var(&altFlag, "altitude", 0, "")
	c.Flags().Float64Var(&massFlag, "mass", 0, "")
	c.Flags().Float64Var(&radiusFlag, "radius", 0, "")
}

func run(c *command.Command, _ []string) error {
	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	mass, r := massFlag, radiusFlag
	preset := false
	if session.Explicit(bodyFlag) || (massFlag == 0 && radiusFlag == 0) {
		b, ok, err := s.Body(bodyFlag)
		if err != nil {
			return err
		}
		if ok {
			if altFlag < 0 {
				return calcerr.Validationf("altitude must be non-negative, got %g", altFlag)
			}
			preset = true
			mass = b.Mass
			r = b.Radius + altFlag
			s.Out.Printf("Using %s", b.Name)
		}
	}
	if !preset {
		if altFlag != 0 {
			return c.UsageError("flag --altitude requires a body preset")
		}
		if mass == 0 || r == 0 {
			return c.UsageError("expecting --body, or both --mass and --radius")
		}
	}

	d, err := relativity.GravitationalDilation(mass, r)
	if err != nil {
		return err
	}
	s.Out.Printf("Using mass = %.6g kg, r = %.6g m", mass, r)
	s.Out.Printf("2GM/(r c^2) = %.6g", d.RsOverR)
	s.Out.Printf("dτ/dt = %s (proper time per far-away coordinate time)", s.Out.Value(fmt.Sprintf("%.10g", d.Factor)))
	return nil
}
