// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package gc implements a command to calculate
// the GC content of a DNA sequence.
package gc

import (
	"fmt"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/bioseq"
	"github.com/js-arias/sciops/cmd/sciops/session"
	"go.uber.org/zap"
)

var Command = &command.Command{
	Usage: "gc [--file <sequence-file>] [<sequence>]",
	Short: "calculate the GC content of a DNA sequence",
	Long: `
Command gc calculates the fraction of G or C bases in a DNA sequence.

The argument of the command is the sequence. Use the flag --file to read the
sequence from a FASTA or plain text file. Characters other than A, C, G, and T
are ignored. See "sciops help bio sequences" for the sequence formats.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var fileFlag string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&fileFlag, "file", "", "")
}

func run(c *command.Command, args []string) error {
	if fileFlag == "" && len(args) < 1 {
		return c.UsageError("expecting a sequence or the --file flag")
	}
	seq, err := readSequence(args)
	if err != nil {
		return err
	}

	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	clean, removed := bioseq.Clean(seq)
	if removed != "" {
		s.Log.Warn("ignoring invalid characters", zap.String("chars", removed))
	}
	gc, err := bioseq.GCContent(clean)
	if err != nil {
		return err
	}

	n := strings.Count(clean, "G") + strings.Count(clean, "C")
	s.Out.Printf("Length = %d", len(clean))
	s.Out.Printf("GC count = %d", n)
	s.Out.Printf("GC fraction = %s", s.Out.Value(fmt.Sprintf("%.6g", gc)))
	return nil
}

func readSequence(args []string) (string, error) {
	if fileFlag == "" {
		return strings.Join(args, ""), nil
	}

	return bioseq.ReadFile(fileFlag)
}
