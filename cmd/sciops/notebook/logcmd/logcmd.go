// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package logcmd implements a command to add
// an entry to the lab notebook.
package logcmd

import (
	"strings"
	"time"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/session"
	"github.com/js-arias/sciops/notebook"
	"go.uber.org/zap"
)

var Command = &command.Command{
	Usage: "log <text>...",
	Short: "add an entry to the lab notebook",
	Long: `
Command log appends a new entry, with the current time, to the lab notebook.

The arguments of the command are the text of the entry. The notebook file,
and its folder, are created if they do not exist. See "sciops help
notebook-file" for the format of the notebook.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting entry text")
	}

	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	name := s.Config.NotebookPath()
	line, err := notebook.Append(name, strings.Join(args, " "), time.Now())
	if err != nil {
		return err
	}
	s.Log.Debug("notebook entry", zap.String("line", line))
	s.Out.Printf("Logged to %s", s.Out.Value(name))
	return nil
}
