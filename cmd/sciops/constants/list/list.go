// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package list implements a command to print
// the physical constants.
package list

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/session"
	"github.com/js-arias/sciops/physconst"
)

var Command = &command.Command{
	Usage: "list [--bodies]",
	Short: "print the physical constants",
	Long: `
Command list prints the physical constants known by sciops, with their
values, units, and references.

If the flag --bodies is defined, it prints the celestial bodies that can be
used as presets with the --body flag of the mechanics and relativity
commands.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var bodiesFlag bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&bodiesFlag, "bodies", false, "")
}

func run(c *command.Command, _ []string) error {
	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	if bodiesFlag {
		var rows [][]string
		for _, b := range physconst.Bodies() {
			rows = append(rows, []string{
				b.Key,
				b.Name,
				fmt.Sprintf("%.6g", b.Mass),
				fmt.Sprintf("%.6g", b.Radius),
				fmt.Sprintf("%.6g", b.Mu),
				fmt.Sprintf("%.6g", b.G),
			})
		}
		return s.Out.Table("Celestial bodies", []string{"Key", "Name", "Mass (kg)", "Radius (m)", "Mu (m^3/s^2)", "g (m/s^2)"}, rows)
	}

	var rows [][]string
	for _, k := range physconst.Constants() {
		rows = append(rows, []string{
			k.Key,
			k.Name,
			k.Symbol,
			fmt.Sprintf("%.6g", k.Value),
			k.Unit,
			k.Reference,
		})
	}
	return s.Out.Table("Physical constants", []string{"Key", "Name", "Symbol", "Value", "Unit", "Reference"}, rows)
}
