// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package power implements a command to calculate
// the average power.
package power

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/args"
	"github.com/js-arias/sciops/cmd/sciops/session"
	"github.com/js-arias/sciops/mech"
)

var Command = &command.Command{
	Usage: "power <work> <time>",
	Short: "calculate the average power",
	Long: `
Command power calculates the average power P = W/t.

The first argument of the command is the work, in J, and the second is the
time interval, in s.
	`,
	Run: run,
}

func run(c *command.Command, a []string) error {
	if len(a) < 2 {
		return c.UsageError("expecting work and time")
	}
	w, err := args.Float("work", a[0])
	if err != nil {
		return err
	}
	t, err := args.Float("time", a[1])
	if err != nil {
		return err
	}
	p, err := mech.Power(w, t)
	if err != nil {
		return err
	}

	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	s.Out.Printf("P = %s", s.Out.Value(fmt.Sprintf("%.6g W", p)))
	return nil
}
