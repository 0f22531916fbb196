// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package ppf implements a command to calculate
// quantiles of a normal distribution.
package ppf

import (
	"fmt"
	"strconv"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/args"
	"github.com/js-arias/sciops/cmd/sciops/session"
	"github.com/js-arias/sciops/stats"
)

var Command = &command.Command{
	Usage: "ppf [--mu <mean>] [--sigma <std-dev>] [--cats <number>] [<probability>]",
	Short: "calculate quantiles of a normal distribution",
	Long: `
Command ppf calculates the value of a normal distribution with a given
cumulative probability (the percent point function, or inverse of the CDF).

The argument of the command is the probability, a value in the open interval
(0, 1). By default the standard normal distribution is used. Use the flags
--mu and --sigma to set the mean and the standard deviation of the
distribution.

If the flag --cats is defined, the argument is not required, and the
distribution is discretized in the indicated number of categories of equal
probability. Each category is represented by the quantile at the middle of
its probability interval.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var muFlag float64
var sigmaFlag float64
var catsFlag int

func setFlags(c *command.Command) {
	c.Flags().Float64Var(&muFlag, "mu", 0, "")
	c.Flags().Float64Var(&sigmaFlag, "sigma", 1, "")
	c.Flags().IntVar(&catsFlag, "cats", 0, "")
}

func run(c *command.Command, a []string) error {
	if catsFlag > 0 {
		return categories(c)
	}
	if len(a) < 1 {
		return c.UsageError("expecting a probability")
	}

	p, err := args.Float("probability", a[0])
	if err != nil {
		return err
	}
	v, err := stats.NormalQuantile(p, muFlag, sigmaFlag)
	if err != nil {
		return err
	}

	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	s.Out.Printf("ppf(p=%g, mu=%g, sigma=%g) = %s", p, muFlag, sigmaFlag, s.Out.Value(fmt.Sprintf("%.10g", v)))
	return nil
}

func categories(c *command.Command) error {
	cats, err := stats.NormalCategories(catsFlag, muFlag, sigmaFlag)
	if err != nil {
		return err
	}

	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	rows := make([][]string, 0, len(cats))
	for i, v := range cats {
		rows = append(rows, []string{strconv.Itoa(i + 1), fmt.Sprintf("%.6g", v)})
	}
	title := fmt.Sprintf("Normal(mu=%g, sigma=%g) in %d categories", muFlag, sigmaFlag, catsFlag)
	return s.Out.Table(title, []string{"Category", "Value"}, rows)
}
