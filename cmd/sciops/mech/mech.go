// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package mech is a metapackage for commands
// that dealt with classical mechanics.
package mech

import (
	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/mech/orbit"
	"github.com/js-arias/sciops/cmd/sciops/mech/pendulum"
	"github.com/js-arias/sciops/cmd/sciops/mech/power"
	"github.com/js-arias/sciops/cmd/sciops/mech/projectile"
	"github.com/js-arias/sciops/cmd/sciops/mech/work"
)

var Command = &command.Command{
	Usage: "mech <command> [<argument>...]",
	Short: "commands for classical mechanics",
}

func init() {
	Command.Add(orbit.Command)
	Command.Add(pendulum.Command)
	Command.Add(power.Command)
	Command.Add(projectile.Command)
	Command.Add(work.Command)

	// help guides
	Command.Add(bodyGuide)
}

var bodyGuide = &command.Command{
	Usage: "body-presets",
	Short: "about celestial body presets",
	Long: `
Several commands use the surface gravity, the gravitational parameter, or
the mass and radius of a celestial body. These values can be given directly
with flags (for example --g, or --mu), or taken from a body preset with the
flag --body. Use "sciops constants list --bodies" to see the known bodies.

The values are resolved in the following order:

	1. A body given with --body.
	2. A value given with its own flag (for example --g).
	3. The default body of the configuration file (see "sciops help
	   config-file").
	4. The Earth.

Use "--body none" to disable the presets; in that case, the value must be
given with its own flag.
	`,
}
