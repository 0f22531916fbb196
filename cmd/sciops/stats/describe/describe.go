// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package describe implements a command to print
// the descriptive statistics of a list of values.
package describe

import (
	"fmt"
	"strconv"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/args"
	"github.com/js-arias/sciops/cmd/sciops/session"
	"github.com/js-arias/sciops/stats"
)

var Command = &command.Command{
	Usage: "describe <value>...",
	Short: "print descriptive statistics of values",
	Long: `
Command describe prints the count, mean, sample standard deviation, minimum,
maximum, and median of a list of values.

The arguments of the command are the values, as separated arguments, or as
comma separated lists. If the first value is negative, precede the values
with "--"; for example:

	sciops stats describe -- -1.5 2 3.25
	`,
	Run: run,
}

func run(c *command.Command, a []string) error {
	if len(a) < 1 {
		return c.UsageError("expecting values")
	}
	xs, err := args.Floats("value", a)
	if err != nil {
		return err
	}
	sum, err := stats.Describe(xs)
	if err != nil {
		return err
	}

	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	return s.Out.Table("", []string{"Metric", "Value"}, [][]string{
		{"count", strconv.Itoa(sum.Count)},
		{"mean", fmt.Sprintf("%.6g", sum.Mean)},
		{"std", fmt.Sprintf("%.6g", sum.Std)},
		{"min", fmt.Sprintf("%.6g", sum.Min)},
		{"max", fmt.Sprintf("%.6g", sum.Max)},
		{"median", fmt.Sprintf("%.6g", sum.Median)},
	})
}
