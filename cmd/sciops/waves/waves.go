// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package waves is a metapackage for commands
// that generate simple waveforms.
package waves

import (
	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/waves/sine"
	"github.com/js-arias/sciops/cmd/sciops/waves/square"
)

var Command = &command.Command{
	Usage: "waves <command> [<argument>...]",
	Short: "commands for waveform generation",
}

func init() {
	Command.Add(sine.Command)
	Command.Add(square.Command)
}
