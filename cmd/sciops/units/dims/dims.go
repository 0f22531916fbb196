// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package dims implements a command to print
// the known dimensions and units.
package dims

import (
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/session"
	"github.com/js-arias/sciops/units"
)

var Command = &command.Command{
	Usage: "dims",
	Short: "print the known dimensions and units",
	Long: `
Command dims prints the dimensions known by the unit converter, and the
symbols of the units of each dimension. The first unit of each dimension is
the SI unit.
	`,
	Run: run,
}

func run(c *command.Command, _ []string) error {
	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	for _, d := range units.Dimensions() {
		s.Out.Printf("%s: %s", s.Out.Value(d.Name), strings.Join(d.Symbols(), ", "))
	}
	return nil
}
