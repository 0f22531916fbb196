// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package work implements a command to calculate
// the work done by a force.
package work

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/args"
	"github.com/js-arias/sciops/cmd/sciops/session"
	"github.com/js-arias/sciops/mech"
)

var Command = &command.Command{
	Usage: "work [--angle <degrees>] <force> <distance>",
	Short: "calculate the work done by a force",
	Long: `
Command work calculates the mechanical work W = F*d*cos(theta).

The first argument of the command is the magnitude of the force, in N, and
the second is the magnitude of the displacement, in m.

By default the force and the displacement have the same direction. Use the
flag --angle to set the angle between them, in degrees.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var angleFlag float64

func setFlags(c *command.Command) {
	c.Flags().Float64Var(&angleFlag, "angle", 0, "")
}

func run(c *command.Command, a []string) error {
	if len(a) < 2 {
		return c.UsageError("expecting force and distance")
	}
	f, err := args.Float("force", a[0])
	if err != nil {
		return err
	}
	d, err := args.Float("distance", a[1])
	if err != nil {
		return err
	}

	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	w := mech.Work(f, d, angleFlag)
	s.Out.Printf("W = %s", s.Out.Value(fmt.Sprintf("%.6g J", w)))
	return nil
}
