// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package em is a metapackage for commands
// that dealt with electromagnetism.
package em

import (
	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/em/coulomb"
	"github.com/js-arias/sciops/cmd/sciops/em/reactance"
)

var Command = &command.Command{
	Usage: "em <command> [<argument>...]",
	Short: "commands for electromagnetism",
}

func init() {
	Command.Add(coulomb.Command)
	Command.Add(reactance.Command)
}
