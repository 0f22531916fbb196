// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package optics is a metapackage for commands
// that dealt with geometrical optics.
package optics

import (
	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/optics/lens"
	"github.com/js-arias/sciops/cmd/sciops/optics/snell"
)

var Command = &command.Command{
	Usage: "optics <command> [<argument>...]",
	Short: "commands for geometrical optics",
}

func init() {
	Command.Add(lens.Command)
	Command.Add(snell.Command)
}
