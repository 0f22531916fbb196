// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package head implements a command to print
// the first rows of a data file.
package head

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/session"
	"github.com/js-arias/sciops/datatab"
)

var Command = &command.Command{
	Usage: "head [-n|--rows <number>] [-d|--delimiter <char>] <data-file>",
	Short: "print the first rows of a data file",
	Long: `
Command head reads a CSV or TSV file and prints its first rows as a table.

The argument of the command is the name of the data file. See "sciops help
data data-files" for the file format.

By default, five rows are printed. Use the flag --rows, or -n, to set a
different number of rows.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var rowsFlag int
var delimFlag string

func setFlags(c *command.Command) {
	c.Flags().IntVar(&rowsFlag, "rows", 5, "")
	c.Flags().IntVar(&rowsFlag, "n", 5, "")
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

	title := fmt.Sprintf("Head: %s (%d rows)", args[0], t.Len())
	return s.Out.Table(title, t.Header(), t.Head(rowsFlag))
}
