// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package stats is a metapackage for commands
// that dealt with descriptive statistics
// and the normal distribution.
package stats

import (
	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/stats/cdf"
	"github.com/js-arias/sciops/cmd/sciops/stats/describe"
	"github.com/js-arias/sciops/cmd/sciops/stats/pdf"
	"github.com/js-arias/sciops/cmd/sciops/stats/ppf"
)

var Command = &command.Command{
	Usage: "stats <command> [<argument>...]",
	Short: "commands for basic statistics",
}

func init() {
	Command.Add(cdf.Command)
	Command.Add(describe.Command)
	Command.Add(pdf.Command)
	Command.Add(ppf.Command)
}
