// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package data is a metapackage for commands
// that dealt with delimited data files.
package data

import (
	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/data/head"
	"github.com/js-arias/sciops/cmd/sciops/data/hist"
	"github.com/js-arias/sciops/cmd/sciops/data/summarize"
)

var Command = &command.Command{
	Usage: "data <command> [<argument>...]",
	Short: "commands for CSV and TSV data files",
}

func init() {
	Command.Add(head.Command)
	Command.Add(hist.Command)
	Command.Add(summarize.Command)

	// help guides
	Command.Add(dataFilesGuide)
}

var dataFilesGuide = &command.Command{
	Usage: "data-files",
	Short: "about delimited data files",
	Long: `
The data and analysis commands read delimited text files, as produced by most
spreadsheets and instruments: comma separated values (CSV), or tab-delimited
values (TSV).

The first row is the header, with the names of the columns. Column names are
case sensitive. Blank lines are ignored.

By default, the delimiter is a comma, unless the file has tabs but no commas,
in which case the delimiter is a tab. Use the flag --delimiter, or -d, to set
a different delimiter; for example "-d ';'" or "-d tab".

Numeric commands only use the cells that can be read as numbers, so blank or
non-numeric cells are skipped.

Here is an example file:

	time,temp,sample
	0,21.5,A
	10,23.1,A
	20,24.9,B
	`,
}
