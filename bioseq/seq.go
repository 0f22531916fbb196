// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package bioseq

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"unicode"

	"github.com/js-arias/sciops/calcerr"
)

// Normalize returns a sequence in upper case
// without blanks.
func Normalize(seq string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, seq)
}

// Clean returns a sequence in upper case
// with only valid nucleotides (A, C, G, T).
// It also returns the removed characters,
// sorted and without repetitions,
// so the caller can warn about them.
func Clean(seq string) (clean, removed string) {
	var b strings.Builder
	var bad []rune
	for _, r := range Normalize(seq) {
		switch r {
		case 'A', 'C', 'G', 'T':
			b.WriteRune(r)
		default:
			if !slices.Contains(bad, r) {
				bad = append(bad, r)
			}
		}
	}
	slices.Sort(bad)
	return b.String(), string(bad)
}

// GCContent returns the fraction of G or C
// in the valid nucleotides of a sequence.
func GCContent(seq string) (float64, error) {
	s, _ := Clean(seq)
	if s == "" {
		return 0, calcerr.Validationf("sequence without valid nucleotides")
	}

	gc := 0
	for _, r := range s {
		if r == 'G' || r == 'C' {
			gc++
		}
	}
	return float64(gc) / float64(len(s)), nil
}

// ReadFASTA reads a sequence from a FASTA file,
// or a plain text file.
// Header lines
// (starting with '>')
// are ignored,
// and all sequence lines are joined
// into a single sequence in upper case.
func ReadFASTA(r io.Reader) (string, error) {
	var b strings.Builder
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<24)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, ">") {
			continue
		}
		b.WriteString(Normalize(line))
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("while reading sequence: %v", err)
	}
	return b.String(), nil
}

// ReadFile reads a sequence from a FASTA
// or plain text file.
func ReadFile(name string) (string, error) {
	f, err := os.Open(name)
	if err != nil {
		return "", fmt.Errorf("on file %q: %w", name, err)
	}
	defer f.Close()

	seq, err := ReadFASTA(f)
	if err != nil {
		return "", fmt.Errorf("on file %q: %w", name, err)
	}
	return seq, nil
}
