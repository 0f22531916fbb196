// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package translate implements a command to translate
// a DNA sequence into a protein.
package translate

import (
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/bioseq"
	"github.com/js-arias/sciops/cmd/sciops/session"
)

var Command = &command.Command{
	Usage: `translate [--frame <offset>] [--read-through] [--orf-only]
	[--file <sequence-file>] [<sequence>]`,
	Short: "translate a DNA sequence into a protein",
	Long: `
Command translate translates a DNA coding sequence (5' to 3') into a protein
sequence, using the standard genetic code.

The argument of the command is the sequence. Use the flag --file to read the
sequence from a FASTA or plain text file.

By default the translation starts at the first base. Use the flag --frame to
set a different frame offset (0, 1, or 2).

By default the translation ends at the first stop codon. Use the flag
--read-through to continue the translation, writing '*' for each stop codon.

If the flag --orf-only is defined, the translation starts at the first ATG
in the frame.

Unknown codons are translated as 'X'; trailing bases of an incomplete codon
are ignored.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var frameFlag int
var readThrough bool
var orfOnly bool
var fileFlag string

func setFlags(c *command.Command) {
	c.Flags().IntVar(&frameFlag, "frame", 0, "")
	c.Flags().BoolVar(&readThrough, "read-through", false, "")
	c.Flags().BoolVar(&orfOnly, "orf-only", false, "")
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

	stop := bioseq.StopAtStop
	if readThrough {
		stop = bioseq.ReadThrough
	}
	start := bioseq.FullSequence
	if orfOnly {
		start = bioseq.ORFOnly
	}

	prot, err := bioseq.Translate(seq, frameFlag, stop, start)
	if err != nil {
		return err
	}

	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	if prot == "" {
		s.Out.Note("Empty protein: the frame starts with a stop codon or has no complete codons.")
		return nil
	}
	s.Out.Printf("Protein: %s", s.Out.Value(prot))
	s.Out.Printf("Length : %d aa", len(prot))
	return nil
}

func readSequence(args []string) (string, error) {
	if fileFlag == "" {
		return strings.Join(args, ""), nil
	}

	return bioseq.ReadFile(fileFlag)
}
