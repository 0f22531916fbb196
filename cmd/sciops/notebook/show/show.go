// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package show implements a command to print
// the lab notebook.
package show

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/calcerr"
	"github.com/js-arias/sciops/cmd/sciops/session"
	"github.com/js-arias/sciops/notebook"
)

var Command = &command.Command{
	Usage: "show",
	Short: "print the lab notebook",
	Long: `
Command show prints the content of the lab notebook. If styled output is
enabled in the configuration, the notebook is rendered as markdown.
	`,
	Run: run,
}

func run(c *command.Command, _ []string) error {
	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	name := s.Config.NotebookPath()
	text, err := notebook.Read(name)
	if calcerr.Is(err, calcerr.NotFound) {
		s.Out.Note("Notebook is empty (file not found).")
		return nil
	}
	if err != nil {
		return err
	}

	return s.Out.Markdown(fmt.Sprintf("# Notebook: %s\n\n%s", name, text))
}
