// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package bioseq

import (
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/js-arias/sciops/calcerr"
)

// StopPolicy defines what to do when a stop codon is found.
type StopPolicy int

// Valid stop policies.
const (
	// StopAtStop ends the translation at the first stop codon.
	StopAtStop StopPolicy = iota

	// ReadThrough emits a stop symbol
	// and continues the translation.
	ReadThrough
)

// StartPolicy defines where the translation starts.
type StartPolicy int

// Valid start policies.
const (
	// FullSequence starts at the first codon of the frame.
	FullSequence StartPolicy = iota

	// ORFOnly starts at the first in-frame start codon.
	ORFOnly
)

// Translate translates a DNA sequence into a protein,
// starting at the given frame offset (0, 1, or 2).
// Codons not in the codon table are translated as Unknown,
// and trailing bases of an incomplete codon are ignored.
func Translate(seq string, frame int, stop StopPolicy, start StartPolicy) (string, error) {
	s := strings.Map(asciiBase, Normalize(seq))
	if s == "" {
		return "", calcerr.Validationf("empty sequence")
	}
	if frame < 0 || frame > 2 {
		return "", calcerr.Validationf("invalid frame offset %d", frame).WithHint("frame offset must be 0, 1, or 2")
	}

	i := frame
	if start == ORFOnly {
		i = findStart(s, frame)
		if i < 0 {
			return "", calcerr.Validationf("no in-frame start codon (%s) from frame offset %d", StartCodon, frame)
		}
	}

	prot, _ := translate(s, i, stop)
	return prot, nil
}

// AsciiBase replaces a multi-byte character
// with a single unknown base,
// so codons are always three characters long.
func asciiBase(r rune) rune {
	if r > unicode.MaxASCII {
		return 'N'
	}
	return r
}

// FindStart returns the position of the first start codon
// in the frame of the given offset,
// or -1 if there is none.
func findStart(s string, offset int) int {
	for i := offset; i+3 <= len(s); i += 3 {
		if s[i:i+3] == StartCodon {
			return i
		}
	}
	return -1
}

// Translate translates the sequence from position i
// and returns the protein
// and the position after the last translated codon.
// If the translation stops at a stop codon,
// the returned position is after the stop codon.
func translate(s string, i int, stop StopPolicy) (string, int) {
	var b strings.Builder
	for ; i+3 <= len(s); i += 3 {
		c := s[i : i+3]
		if IsStop(c) {
			if stop == StopAtStop {
				return b.String(), i + 3
			}
			b.WriteByte(Stop)
			continue
		}
		b.WriteByte(Codon(c))
	}
	return b.String(), i
}

// An ORF is an open reading frame
// found in a sequence.
type ORF struct {
	// Frame is the reading frame (1, 2, or 3).
	Frame int

	// Start is the 1-based position of the first base
	// of the start codon.
	Start int

	// End is the 1-based position of the last base
	// of the stop codon,
	// or the last scanned base
	// if the ORF is not closed by a stop codon.
	End int

	// Protein is the translated ORF,
	// without the stop codon.
	Protein string
}

// FindORFs searches the open reading frames
// of a sequence in the given frames (1, 2, or 3)
// with at least minAA amino acids.
//
// Each start codon starts a new candidate ORF,
// so overlapping ORFs in the same frame are reported
// independently.
// ORFs are returned by frame,
// and by start position.
//
// Invalid characters are removed before the search
// and returned,
// sorted and without repetitions.
func FindORFs(seq string, frames []int, minAA int, stop StopPolicy) ([]ORF, string, error) {
	s, removed := Clean(seq)
	if s == "" {
		return nil, removed, calcerr.Validationf("sequence without valid nucleotides")
	}
	if minAA < 0 {
		return nil, removed, calcerr.Validationf("invalid minimum length %d", minAA)
	}
	fr, err := checkFrames(frames)
	if err != nil {
		return nil, removed, err
	}

	var orfs []ORF
	for _, f := range fr {
		for i := f - 1; i+3 <= len(s); i += 3 {
			if s[i:i+3] != StartCodon {
				continue
			}
			prot, end := translate(s, i, stop)
			if len(prot) < minAA {
				continue
			}
			orfs = append(orfs, ORF{
				Frame:   f,
				Start:   i + 1,
				End:     end,
				Protein: prot,
			})
		}
	}
	return orfs, removed, nil
}

func checkFrames(frames []int) ([]int, error) {
	if len(frames) == 0 {
		return nil, calcerr.Validationf("no reading frames").WithHint("frames must be among 1, 2, 3")
	}
	fr := slices.Clone(frames)
	slices.Sort(fr)
	fr = slices.Compact(fr)
	for _, f := range fr {
		if f < 1 || f > 3 {
			return nil, calcerr.Validationf("invalid reading frame %d", f).WithHint("frames must be among 1, 2, 3")
		}
	}
	return fr, nil
}

// ParseFrames parses a comma separated list of frames,
// for example "1,2,3".
func ParseFrames(text string) ([]int, error) {
	var frames []int
	for _, f := range strings.Split(text, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, calcerr.Parsef("invalid frame %q", f).WithHint("frames must be a comma separated list of 1, 2, 3")
		}
		frames = append(frames, v)
	}
	return checkFrames(frames)
}
