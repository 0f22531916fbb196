// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package cdf implements a command to calculate
// the cumulative probability of a normal distribution.
package cdf

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/args"
	"github.com/js-arias/sciops/cmd/sciops/session"
	"github.com/js-arias/sciops/stats"
)

var Command = &command.Command{
	Usage: "cdf [--mu <mean>] [--sigma <std-dev>] <x>",
	Short: "evaluate the normal cumulative distribution",
	Long: `
Command cdf calculates the cumulative probability of a normal distribution
at a given point.

The argument of the command is the point. By default the standard normal
distribution is used. Use the flags --mu and --sigma to set the mean and the
standard deviation of the distribution.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var muFlag float64
var sigmaFlag float64

func setFlags(c *command.Command) {
	c.Flags().Float64Var(&muFlag, "mu", 0, "")
	c.Flags().Float64Var(&sigmaFlag, "sigma", 1, "")
}

func run(c *command.Command, a []string) error {
	if len(a) < 1 {
		return c.UsageError("expecting a point")
	}
	x, err := args.Float("x", a[0])
	if err != nil {
		return err
	}
	v, err := stats.NormalCDF(x, muFlag, sigmaFlag)
	if err != nil {
		return err
	}

	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	s.Out.Printf("cdf(x=%g, mu=%g, sigma=%g) = %s", x, muFlag, sigmaFlag, s.Out.Value(fmt.Sprintf("%.10g", v)))
	return nil
}
