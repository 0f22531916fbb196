// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package set implements a command to set
// a value of the sciops configuration.
package set

import (
	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/config/show"
	"github.com/js-arias/sciops/cmd/sciops/session"
	"github.com/js-arias/sciops/config"
	"github.com/js-arias/sciops/termout"
	"go.uber.org/zap"
)

var Command = &command.Command{
	Usage: "set <key> <value>",
	Short: "set a value of the sciops configuration",
	Long: `
Command set sets a value of the sciops configuration, and saves the
configuration file.

The first argument of the command is the key, and the second is the new
value. Valid keys are:

	notebook      the path of the lab notebook file.
	default_body  the body used by default for body presets, or "none".
	color         whether to use styled output: true/false, yes/no,
	              on/off, or 1/0.

See "sciops help config-file" for more information.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 2 {
		return c.UsageError("expecting key and value")
	}

	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	key := config.ParseParam(args[0])
	if err := s.Config.Set(key, args[1]); err != nil {
		return err
	}
	if err := s.Config.Write(); err != nil {
		return err
	}
	if s.ConfigErr != nil {
		s.Log.Info("invalid entries removed from configuration", zap.String("file", s.Config.Name()))
	}
	s.Log.Info("configuration updated", zap.String("file", s.Config.Name()))

	// the printer reflects the new color setting
	out := termout.New(c.Stdout(), s.Config.Color())
	out.Printf("Config updated: %s = %s", key, s.Config.Value(key))
	return show.Print(out, s.Config)
}
