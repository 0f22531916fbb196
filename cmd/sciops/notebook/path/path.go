// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package path implements a command to print
// or set the path of the lab notebook.
package path

import (
	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/session"
	"github.com/js-arias/sciops/config"
	"go.uber.org/zap"
)

var Command = &command.Command{
	Usage: "path [<notebook-file>]",
	Short: "print or set the path of the lab notebook",
	Long: `
Command path prints the path of the lab notebook file.

If an argument is given, it is used as the new path of the notebook, and it
is stored in the configuration file. The notebook file will be created with
the first entry.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	if len(args) == 0 {
		s.Out.Printf("%s", s.Config.NotebookPath())
		return nil
	}

	if err := s.Config.Set(config.Notebook, args[0]); err != nil {
		return err
	}
	if err := s.Config.Write(); err != nil {
		return err
	}
	s.Log.Info("configuration updated", zap.String("file", s.Config.Name()))
	s.Out.Printf("Notebook path set to %s", s.Out.Value(s.Config.NotebookPath()))
	return nil
}
