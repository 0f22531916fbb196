// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package show implements a command to print
// the sciops configuration.
package show

import (
	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/session"
	"github.com/js-arias/sciops/config"
	"github.com/js-arias/sciops/termout"
)

var Command = &command.Command{
	Usage: "show",
	Short: "print the sciops configuration",
	Long: `
Command show prints the values of the sciops configuration, and the path of
the configuration file. See "sciops help config-file" for the meaning of each
parameter.
	`,
	Run: run,
}

func run(c *command.Command, _ []string) error {
	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	if s.ConfigErr != nil {
		s.Out.Note("Configuration file has invalid entries (defaults shown): %v", s.ConfigErr)
		s.Out.Note("Use \"sciops config set\" to repair the file.")
	}
	return Print(s.Out, s.Config)
}

// Print writes the configuration values.
func Print(out *termout.Printer, cfg *config.Config) error {
	var rows [][]string
	for _, p := range config.Params() {
		v := cfg.Value(p)
		if v == "" {
			v = "none"
		}
		rows = append(rows, []string{string(p), v})
	}
	return out.Table("sciops configuration: "+cfg.Name(), []string{"Key", "Value"}, rows)
}
