// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package constants is a metapackage for commands
// that dealt with physical constants
// and celestial body presets.
package constants

import (
	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/constants/get"
	"github.com/js-arias/sciops/cmd/sciops/constants/list"
)

var Command = &command.Command{
	Usage: "constants <command> [<argument>...]",
	Short: "commands for physical constants",
}

func init() {
	Command.Add(get.Command)
	Command.Add(list.Command)
}
