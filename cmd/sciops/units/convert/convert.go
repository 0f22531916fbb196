// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package convert implements a command to convert
// a value between units.
package convert

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/args"
	"github.com/js-arias/sciops/cmd/sciops/session"
	"github.com/js-arias/sciops/units"
)

var Command = &command.Command{
	Usage: "convert <value> <from-unit> <to-unit>",
	Short: "convert a value between units",
	Long: `
Command convert converts a value between two units of the same dimension.

The first argument is the value, the second is the symbol of the source unit,
and the third is the symbol of the target unit; for example:

	sciops units convert 100 km/h m/s

Unit symbols are case sensitive. Use "sciops units dims" to see the known
units. A negative value must be preceded by "--", for example:

	sciops units convert -- -3 km m
	`,
	Run: run,
}

func run(c *command.Command, a []string) error {
	if len(a) < 3 {
		return c.UsageError("expecting value, source unit, and target unit")
	}

	v, err := args.Float("value", a[0])
	if err != nil {
		return err
	}
	r, err := units.Convert(v, a[1], a[2])
	if err != nil {
		return err
	}

	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	s.Out.Printf("%g %s = %s", v, a[1], s.Out.Value(fmt.Sprintf("%.6g %s", r, a[2])))
	return nil
}
