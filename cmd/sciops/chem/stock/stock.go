// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package stock implements a command to calculate
// the volume of stock solution
// required for a target solution.
package stock

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/chem"
	"github.com/js-arias/sciops/cmd/sciops/args"
	"github.com/js-arias/sciops/cmd/sciops/session"
)

var Command = &command.Command{
	Usage: "stock <stock-concentration> <final-concentration> <final-volume>",
	Short: "calculate the stock volume for a target solution",
	Long: `
Command stock calculates the volume of a stock solution, and the volume of
solvent, required to prepare a given volume of a solution with a target
concentration.

The first argument of the command is the concentration of the stock, the
second is the target concentration, and the third is the final volume.
Concentrations must be in the same units; the volumes are reported in the
units of the final volume.
	`,
	Run: run,
}

func run(c *command.Command, a []string) error {
	if len(a) < 3 {
		return c.UsageError("expecting stock concentration, final concentration, and final volume")
	}
	cs, err := args.Float("stock concentration", a[0])
	if err != nil {
		return err
	}
	cf, err := args.Float("final concentration", a[1])
	if err != nil {
		return err
	}
	vf, err := args.Float("final volume", a[2])
	if err != nil {
		return err
	}
	stock, solvent, err := chem.StockDilution(cs, cf, vf)
	if err != nil {
		return err
	}

	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	return s.Out.Table("Stock dilution", []string{"Quantity", "Value"}, [][]string{
		{"Stock volume", fmt.Sprintf("%.6g", stock)},
		{"Add solvent", fmt.Sprintf("%.6g", solvent)},
	})
}
