// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package uncertainty implements a command to combine
// independent uncertainties.
package uncertainty

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/args"
	"github.com/js-arias/sciops/cmd/sciops/session"
	"github.com/js-arias/sciops/stats"
)

var Command = &command.Command{
	Usage: "uncertainty <value>...",
	Short: "combine independent uncertainties",
	Long: `
Command uncertainty combines independent uncertainties in quadrature:

	u = sqrt(u1^2 + u2^2 + ...)

The arguments of the command are the uncertainties, as separated arguments,
or as comma separated lists.
	`,
	Run: run,
}

func run(c *command.Command, a []string) error {
	if len(a) < 1 {
		return c.UsageError("expecting uncertainty values")
	}
	us, err := args.Floats("uncertainty", a)
	if err != nil {
		return err
	}
	u, err := stats.CombineUncertainty(us)
	if err != nil {
		return err
	}

	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	s.Out.Printf("Combined uncertainty = %s", s.Out.Value(fmt.Sprintf("%.6g", u)))
	return nil
}
