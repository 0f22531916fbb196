// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package chem is a metapackage for commands
// that dealt with chemistry lab calculations.
package chem

import (
	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/chem/dilute"
	"github.com/js-arias/sciops/cmd/sciops/chem/errcmd"
	"github.com/js-arias/sciops/cmd/sciops/chem/molarity"
	"github.com/js-arias/sciops/cmd/sciops/chem/stock"
)

var Command = &command.Command{
	Usage: "chem <command> [<argument>...]",
	Short: "commands for chemistry lab calculations",
}

func init() {
	Command.Add(dilute.Command)
	Command.Add(errcmd.Command)
	Command.Add(molarity.Command)
	Command.Add(stock.Command)
}
