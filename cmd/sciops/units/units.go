// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package units is a metapackage for commands
// that dealt with physical units.
package units

import (
	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/units/convert"
	"github.com/js-arias/sciops/cmd/sciops/units/dims"
)

var Command = &command.Command{
	Usage: "units <command> [<argument>...]",
	Short: "commands for unit conversion",
}

func init() {
	Command.Add(convert.Command)
	Command.Add(dims.Command)
}
