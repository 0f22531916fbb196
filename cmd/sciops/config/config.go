// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package config is a metapackage for commands
// that dealt with the sciops configuration.
package config

import (
	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/config/set"
	"github.com/js-arias/sciops/cmd/sciops/config/show"
)

var Command = &command.Command{
	Usage: "config <command> [<argument>...]",
	Short: "commands for the sciops configuration",
}

func init() {
	Command.Add(set.Command)
	Command.Add(show.Command)
}
