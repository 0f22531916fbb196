// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package summarize implements a command to print
// the descriptive statistics of the columns
// of a data file.
package summarize

import (
	"fmt"
	"strconv"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/session"
	"github.com/js-arias/sciops/datatab"
	"github.com/js-arias/sciops/stats"
)

var Command = &command.Command{
	Usage: "summarize [-d|--delimiter <char>] <data-file>",
	Short: "print statistics of the numeric columns of a file",
	Long: `
Command summarize reads a CSV or TSV file and prints the count, mean, standard
deviation, minimum, maximum, and median of each numeric column.

The argument of the command is the name of the data file. See "sciops help
data data-files" for the file format.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var delimFlag string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&delimFlag, "delimiter", "", "")
	c.Flags().StringVar(&delimFlag, "d", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting data file")
	}
	delim, err := datatab.ParseDelim(delimFlag)
	if err != nil {
		return err
	}
	t, err := datatab.ReadFile(args[0], delim)
	if err != nil {
		return err
	}

	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	var rows [][]string
	for _, h := range t.Header() {
		xs, err := t.Column(h)
		if err != nil {
			return err
		}
		if len(xs) == 0 {
			continue
		}
		sum, err := stats.Describe(xs)
		if err != nil {
			return fmt.Errorf("column %q: %w", h, err)
		}
		rows = append(rows, []string{
			h,
			strconv.Itoa(sum.Count),
			fmt.Sprintf("%.6g", sum.Mean),
			fmt.Sprintf("%.6g", sum.Std),
			fmt.Sprintf("%.6g", sum.Min),
			fmt.Sprintf("%.6g", sum.Max),
			fmt.Sprintf("%.6g", sum.Median),
		})
	}
	if len(rows) == 0 {
		s.Out.Note("No numeric columns detected.")
		return nil
	}

	title := fmt.Sprintf("Summary: %s", args[0])
	return s.Out.Table(title, []string{"Column", "Count", "Mean", "Std", "Min", "Max", "Median"}, rows)
}
