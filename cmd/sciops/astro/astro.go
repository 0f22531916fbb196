// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package astro is a metapackage for commands
// that dealt with sky coordinates and sidereal time.
package astro

import (
	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/astro/altaz"
	"github.com/js-arias/sciops/cmd/sciops/astro/jd"
	"github.com/js-arias/sciops/cmd/sciops/astro/lst"
	"github.com/js-arias/sciops/cmd/sciops/astro/sep"
)

var Command = &command.Command{
	Usage: "astro <command> [<argument>...]",
	Short: "commands for sky coordinates and sidereal time",
}

func init() {
	Command.Add(altaz.Command)
	Command.Add(jd.Command)
	Command.Add(lst.Command)
	Command.Add(sep.Command)
}
