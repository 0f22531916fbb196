// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package analysis is a metapackage for commands
// that dealt with the analysis of measurements.
package analysis

import (
	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/analysis/regress"
	"github.com/js-arias/sciops/cmd/sciops/analysis/uncertainty"
)

var Command = &command.Command{
	Usage: "analysis <command> [<argument>...]",
	Short: "commands for regression and uncertainties",
}

func init() {
	Command.Add(regress.Command)
	Command.Add(uncertainty.Command)
}
