// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package orfs implements a command to search
// the open reading frames of a DNA sequence.
package orfs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/bioseq"
	"github.com/js-arias/sciops/cmd/sciops/session"
	"go.uber.org/zap"
)

var Command = &command.Command{
	Usage: `orfs [--min-aa <number>] [--frames <list>] [--read-through]
	[--file <sequence-file>] [<sequence>]`,
	Short: "search the open reading frames of a DNA sequence",
	Long: `
Command orfs scans a DNA sequence for open reading frames (ORFs). An ORF
starts at an ATG codon and ends at the first stop codon in the same frame.
Every ATG starts a new ORF, so nested ORFs in the same frame are reported
independently.

The argument of the command is the sequence. Use the flag --file to read the
sequence from a FASTA or plain text file. Characters other than A, C, G, and T
are removed before the search.

By default, ORFs with at least 30 amino acids are reported. Use the flag
--min-aa to set a different minimum length.

By default, the three frames are scanned. Use the flag --frames to define a
comma separated list of frames, for example "1,3". Frame 1 starts at the
first base.

By default, an ORF ends at the first stop codon. Use the flag --read-through
to continue until the end of the sequence, writing '*' for each stop codon.

For each ORF, the output includes the frame, the positions (1-based) of the
first and last bases, the length in amino acids, and the protein. Long
proteins are truncated; use the flag --full to print the whole protein.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var minAA int
var framesFlag string
var readThrough bool
var fullFlag bool
var fileFlag string

func setFlags(c *command.Command) {
	c.Flags().IntVar(&minAA, "min-aa", 30, "")
	c.Flags().StringVar(&framesFlag, "frames", "1,2,3", "")
	c.Flags().BoolVar(&readThrough, "read-through", false, "")
	c.Flags().BoolVar(&fullFlag, "full", false, "")
	c.Flags().StringVar(&fileFlag, "file", "", "")
}

// preview is the number of amino acids
// printed of a long protein.
const preview = 30

func run(c *command.Command, args []string) error {
	if fileFlag == "" && len(args) < 1 {
		return c.UsageError("expecting a sequence or the --file flag")
	}
	frames, err := bioseq.ParseFrames(framesFlag)
	if err != nil {
		return err
	}
	seq, err := readSequence(args)
	if err != nil {
		return err
	}

	stop := bioseq.StopAtStop
	if readThrough {
		stop = bioseq.ReadThrough
	}

	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	orfs, removed, err := bioseq.FindORFs(seq, frames, minAA, stop)
	if removed != "" {
		s.Log.Warn("ignoring invalid characters", zap.String("chars", removed))
	}
	if err != nil {
		return err
	}

	if len(orfs) == 0 {
		s.Out.Note("No ORFs found with length >= %d aa in frames %v.", minAA, frames)
		return nil
	}

	rows := make([][]string, 0, len(orfs))
	for _, o := range orfs {
		p := o.Protein
		if !fullFlag && len(p) > preview {
			p = p[:preview] + "..."
		}
		rows = append(rows, []string{
			strconv.Itoa(o.Frame),
			strconv.Itoa(o.Start),
			strconv.Itoa(o.End),
			strconv.Itoa(len(o.Protein)),
			p,
		})
	}
	title := fmt.Sprintf("ORFs (min length %d aa)", minAA)
	return s.Out.Table(title, []string{"Frame", "Start nt", "End nt", "AA length", "Protein"}, rows)
}

func readSequence(args []string) (string, error) {
	if fileFlag == "" {
		return strings.Join(args, ""), nil
	}

	return bioseq.ReadFile(fileFlag)
}
