// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package relativity is a metapackage for commands
// that dealt with special and general relativity.
package relativity

import (
	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/relativity/contraction"
	"github.com/js-arias/sciops/cmd/sciops/relativity/dilation"
	"github.com/js-arias/sciops/cmd/sciops/relativity/energy"
	"github.com/js-arias/sciops/cmd/sciops/relativity/gamma"
	"github.com/js-arias/sciops/cmd/sciops/relativity/grav"
)

var Command = &command.Command{
	Usage: "relativity <command> [<argument>...]",
	Short: "commands for special and general relativity",
}

func init() {
	Command.Add(contraction.Command)
	Command.Add(dilation.Command)
	Command.Add(energy.Command)
	Command.Add(gamma.Command)
	Command.Add(grav.Command)
}
