// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Sciops is a command line toolkit of small calculators
// for the laboratory and the field.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/analysis"
	"github.com/js-arias/sciops/cmd/sciops/astro"
	"github.com/js-arias/sciops/cmd/sciops/bio"
	"github.com/js-arias/sciops/cmd/sciops/chem"
	"github.com/js-arias/sciops/cmd/sciops/config"
	"github.com/js-arias/sciops/cmd/sciops/constants"
	"github.com/js-arias/sciops/cmd/sciops/data"
	"github.com/js-arias/sciops/cmd/sciops/em"
	"github.com/js-arias/sciops/cmd/sciops/mech"
	"github.com/js-arias/sciops/cmd/sciops/notebook"
	"github.com/js-arias/sciops/cmd/sciops/optics"
	"github.com/js-arias/sciops/cmd/sciops/relativity"
	"github.com/js-arias/sciops/cmd/sciops/stats"
	"github.com/js-arias/sciops/cmd/sciops/units"
	"github.com/js-arias/sciops/cmd/sciops/waves"
)

var app = &command.Command{
	Usage: "sciops <command> [<argument>...]",
	Short: "a toolkit of scientific calculators",
}

func init() {
	app.Add(analysis.Command)
	app.Add(astro.Command)
	app.Add(bio.Command)
	app.Add(chem.Command)
	app.Add(config.Command)
	app.Add(constants.Command)
	app.Add(data.Command)
	app.Add(em.Command)
	app.Add(mech.Command)
	app.Add(notebook.Command)
	app.Add(optics.Command)
	app.Add(relativity.Command)
	app.Add(stats.Command)
	app.Add(units.Command)
	app.Add(waves.Command)
}

func main() {
	app.Main()
}
