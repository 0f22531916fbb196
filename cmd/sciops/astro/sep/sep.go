// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package sep implements a command to calculate
// the angular separation between two sky positions.
package sep

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/astro"
	"github.com/js-arias/sciops/cmd/sciops/session"
)

var Command = &command.Command{
	Usage: "sep --ra1 <ra> --dec1 <dec> --ra2 <ra> --dec2 <dec>",
	Short: "calculate the angular separation of two positions",
	Long: `
Command sep calculates the angular distance, over the celestial sphere,
between two positions given in equatorial coordinates.

The flags --ra1 and --dec1 set the first position, and --ra2 and --dec2 the
second one. See "sciops help angles" for the accepted formats.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var ra1Flag, dec1Flag string
var ra2Flag, dec2Flag string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&ra1Flag, "ra1", "", "")
	c.Flags().StringVar(&dec1Flag, "dec1", "", "")
	c.Flags().StringVar(&ra2Flag, "ra2", "", "")
	c.Flags().StringVar(&dec2Flag, "dec2", "", "")
}

func run(c *command.Command, _ []string) error {
	if ra1Flag == "" || dec1Flag == "" || ra2Flag == "" || dec2Flag == "" {
		return c.UsageError("flags --ra1, --dec1, --ra2, and --dec2 must be defined")
	}

	ra1, err := astro.ParseRA(ra1Flag)
	if err != nil {
		return err
	}
	dec1, err := astro.ParseDec(dec1Flag)
	if err != nil {
		return err
	}
	ra2, err := astro.ParseRA(ra2Flag)
	if err != nil {
		return err
	}
	dec2, err := astro.ParseDec(dec2Flag)
	if err != nil {
		return err
	}

	d, err := astro.Separation(ra1, dec1, ra2, dec2)
	if err != nil {
		return err
	}

	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	s.Out.Printf("Separation: %s", s.Out.Value(fmt.Sprintf("%.4f°", d)))
	s.Out.Printf("            %s", astro.FormatDegrees(d))
	return nil
}
