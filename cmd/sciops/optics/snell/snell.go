// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package snell implements a command to calculate
// the refraction of a ray.
package snell

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/args"
	"github.com/js-arias/sciops/cmd/sciops/session"
	"github.com/js-arias/sciops/optics"
)

var Command = &command.Command{
	Usage: "snell <n1> <n2> <angle>",
	Short: "calculate the refraction of a ray",
	Long: `
Command snell uses Snell's law, n1*sin(theta1) = n2*sin(theta2), to calculate
the angle of refraction of a ray that passes between two media.

The first argument of the command is the index of refraction of the first
medium, the second is the index of refraction of the second medium, and the
third is the angle of incidence, in degrees.

If there is a total internal reflection, there is no transmitted ray and a
notice is printed.
	`,
	Run: run,
}

func run(c *command.Command, a []string) error {
	if len(a) < 3 {
		return c.UsageError("expecting n1, n2, and angle of incidence")
	}
	n1, err := args.Float("n1", a[0])
	if err != nil {
		return err
	}
	n2, err := args.Float("n2", a[1])
	if err != nil {
		return err
	}
	theta1, err := args.Float("angle", a[2])
	if err != nil {
		return err
	}
	r, err := optics.Snell(n1, n2, theta1)
	if err != nil {
		return err
	}

	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	if r.TIR {
		s.Out.Note("Total internal reflection: no transmitted ray.")
		return nil
	}
	s.Out.Printf("θ1 = %.6g°", theta1)
	s.Out.Printf("θ2 = %s", s.Out.Value(fmt.Sprintf("%.6g°", r.Theta2)))
	return nil
}
