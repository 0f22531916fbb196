// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package bioseq implements simple tools
// for DNA sequences:
// cleaning,
// GC content,
// translation into proteins,
// and the search of open reading frames.
package bioseq

// Stop is the symbol used for a stop codon.
const Stop = '*'

// Unknown is the symbol used for a codon
// not found in the codon table.
const Unknown = 'X'

// StartCodon is the codon that starts an ORF.
const StartCodon = "ATG"

// CodonTable is the standard genetic code.
var CodonTable = map[string]byte{
	"TTT": 'F', // Phenylalanine
	"TTC": 'F',

	"TTA": 'L', // Leucine
	"TTG": 'L',
	"CTT": 'L',
	"CTC": 'L',
	"CTA": 'L',
	"CTG": 'L',

	"ATT": 'I', // Isoleucine
	"ATC": 'I',
	"ATA": 'I',

	"ATG": 'M', // Methionine

	"GTT": 'V', // Valine
	"GTC": 'V',
	"GTA": 'V',
	"GTG": 'V',

	"TCT": 'S', // Serine
	"TCC": 'S',
	"TCA": 'S',
	"TCG": 'S',
	"AGT": 'S',
	"AGC": 'S',

	"CCT": 'P', // Proline
	"CCC": 'P',
	"CCA": 'P',
	"CCG": 'P',

	"ACT": 'T', // Threonine
	"ACC": 'T',
	"ACA": 'T',
	"ACG": 'T',

	"GCT": 'A', // Alanine
	"GCC": 'A',
	"GCA": 'A',
	"GCG": 'A',

	"TAT": 'Y', // Tyrosine
	"TAC": 'Y',

	"CAT": 'H', // Histidine
	"CAC": 'H',

	"CAA": 'Q', // Glutamine
	"CAG": 'Q',

	"AAT": 'N', // Asparagine
	"AAC": 'N',

	"AAA": 'K', // Lysine
	"AAG": 'K',

	"GAT": 'D', // Aspartic acid
	"GAC": 'D',

	"GAA": 'E', // Glutamic acid
	"GAG": 'E',

	"TGT": 'C', // Cysteine
	"TGC": 'C',

	"TGG": 'W', // Tryptophan

	"CGT": 'R', // Arginine
	"CGC": 'R',
	"CGA": 'R',
	"CGG": 'R',
	"AGA": 'R',
	"AGG": 'R',

	"GGT": 'G', // Glycine
	"GGC": 'G',
	"GGA": 'G',
	"GGG": 'G',

	"TAA": Stop,
	"TAG": Stop,
	"TGA": Stop,
}

// Codon returns the amino acid of a codon.
// If the codon is not in the table
// it returns Unknown.
func Codon(c string) byte {
	aa, ok := CodonTable[c]
	if !ok {
		return Unknown
	}
	return aa
}

// IsStop returns true if the codon is a stop codon.
func IsStop(c string) bool {
	return CodonTable[c] == Stop
}
