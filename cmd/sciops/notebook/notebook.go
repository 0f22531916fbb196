// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package notebook is a metapackage for commands
// that dealt with the lab notebook.
package notebook

import (
	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/notebook/logcmd"
	"github.com/js-arias/sciops/cmd/sciops/notebook/path"
	"github.com/js-arias/sciops/cmd/sciops/notebook/show"
)

var Command = &command.Command{
	Usage: "notebook <command> [<argument>...]",
	Short: "commands for the lab notebook",
}

func init() {
	Command.Add(logcmd.Command)
	Command.Add(path.Command)
	Command.Add(show.Command)
}
