// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package dilute implements a command to calculate
// the final volume of a dilution.
package dilute

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/chem"
	"github.com/js-arias/sciops/cmd/sciops/args"
	"github.com/js-arias/sciops/cmd/sciops/session"
)

var Command = &command.Command{
	Usage: "dilute <c1> <v1> <c2>",
	Short: "calculate the final volume of a dilution",
	Long: `
Command dilute uses C1*V1 = C2*V2 to calculate the final volume of a
dilution, and the volume of solvent to add.

The first argument of the command is the concentration of the stock solution,
the second is the volume of stock used, and the third is the target
concentration. Concentrations must be in the same units; the volumes are
reported in the units of the stock volume. The target concentration must be
lower than the stock concentration.
	`,
	Run: run,
}

func run(c *command.Command, a []string) error {
	if len(a) < 3 {
		return c.UsageError("expecting c1, v1, and c2")
	}
	c1, err := args.Float("stock concentration", a[0])
	if err != nil {
		return err
	}
	v1, err := args.Float("stock volume", a[1])
	if err != nil {
		return err
	}
	c2, err := args.Float("target concentration", a[2])
	if err != nil {
		return err
	}
	v2, err := chem.DilutionFinalVolume(c1, v1, c2)
	if err != nil {
		return err
	}

	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	s.Out.Printf("Final volume: %s", s.Out.Value(fmt.Sprintf("%.6g", v2)))
	s.Out.Printf("Add solvent : %s", s.Out.Value(fmt.Sprintf("%.6g", v2-v1)))
	s.Out.Note("Assuming ideal mixing; adjust for density and temperature if needed.")
	return nil
}
