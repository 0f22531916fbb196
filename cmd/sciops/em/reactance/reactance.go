// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package reactance implements a command to calculate
// the reactance of an inductor and a capacitor.
package reactance

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/args"
	"github.com/js-arias/sciops/cmd/sciops/session"
	"github.com/js-arias/sciops/em"
)

var Command = &command.Command{
	Usage: "reactance [--L <inductance>] [--C <capacitance>] <frequency>",
	Short: "calculate the reactance of an inductor and a capacitor",
	Long: `
Command reactance calculates the reactance of an inductor and a capacitor in
series:

	X_L = 2*pi*f*L
	X_C = -1/(2*pi*f*C)
	X = X_L + X_C

The argument of the command is the frequency, in Hz. Use the flag --L to set
the inductance, in H, and the flag --C to set the capacitance, in F. At least
one of them must be defined.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var lFlag float64
var cFlag float64

func setFlags(c *command.Command) {
	c.Flags().Float64Var(&lFlag, "L", 0, "")
	c.Flags().Float64Var(&cFlag, "C", 0, "")
}

func run(c *command.Command, a []string) error {
	if len(a) < 1 {
		return c.UsageError("expecting frequency")
	}
	f, err := args.Float("frequency", a[0])
	if err != nil {
		return err
	}
	x, err := em.Reactance(f, lFlag, cFlag)
	if err != nil {
		return err
	}

	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	s.Out.Printf("X_L = %.6g Ω", x.XL)
	s.Out.Printf("X_C = %.6g Ω", x.XC)
	s.Out.Printf("X_total (series) = %s", s.Out.Value(fmt.Sprintf("%.6g Ω", x.Total)))
	return nil
}
