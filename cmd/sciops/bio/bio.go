// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package bio is a metapackage for commands
// that dealt with DNA sequences and genetics.
package bio

import (
	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/bio/gc"
	"github.com/js-arias/sciops/cmd/sciops/bio/hardyweinberg"
	"github.com/js-arias/sciops/cmd/sciops/bio/orfs"
	"github.com/js-arias/sciops/cmd/sciops/bio/punnett"
	"github.com/js-arias/sciops/cmd/sciops/bio/translate"
)

var Command = &command.Command{
	Usage: "bio <command> [<argument>...]",
	Short: "commands for DNA sequences and genetics",
}

func init() {
	Command.Add(gc.Command)
	Command.Add(hardyweinberg.Command)
	Command.Add(orfs.Command)
	Command.Add(punnett.Command)
	Command.Add(translate.Command)

	// help guides
	Command.Add(sequenceGuide)
}

var sequenceGuide = &command.Command{
	Usage: "sequences",
	Short: "about DNA sequence input",
	Long: `
Commands that read a DNA sequence accept it as an argument, or from a file
with the flag --file.

A sequence given as an argument can include blanks, which are ignored; for
example:

	sciops bio gc "ATG GCC ATT GTA"

A sequence file can be a plain text file, or a FASTA file. In a FASTA file,
the lines that start with '>' are headers and are ignored, and all other lines
are joined into a single sequence. Here is an example file:

	>sample-1 partial cds
	ATGGCCATTGTAATGGGCCGCTGA
	AAGGGTGCCCGATAG

Sequences are read in upper case. The valid nucleotides are A, C, G, and T.
Commands that count nucleotides or search reading frames remove any other
character and report the removed characters as a warning.

Reading frames are numbered 1, 2, and 3 when searching for open reading
frames, and given as offsets 0, 1, and 2 when translating a sequence.
	`,
}
