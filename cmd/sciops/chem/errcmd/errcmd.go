// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package errcmd implements a command to calculate
// the percent error of a measurement.
package errcmd

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/chem"
	"github.com/js-arias/sciops/cmd/sciops/args"
	"github.com/js-arias/sciops/cmd/sciops/session"
)

var Command = &command.Command{
	Usage: "error <measured> <true-value>",
	Short: "calculate the percent error of a measurement",
	Long: `
Command error calculates the signed percent error of a measured value:
(measured - true) / true * 100.

The first argument of the command is the measured value, and the second is
the true, or expected, value.
	`,
	Run: run,
}

func run(c *command.Command, a []string) error {
	if len(a) < 2 {
		return c.UsageError("expecting measured and true values")
	}
	m, err := args.Float("measured value", a[0])
	if err != nil {
		return err
	}
	tv, err := args.Float("true value", a[1])
	if err != nil {
		return err
	}
	pe, err := chem.PercentError(m, tv)
	if err != nil {
		return err
	}

	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	s.Out.Printf("Percent error = %s", s.Out.Value(fmt.Sprintf("%.6g%%", pe)))
	return nil
}
