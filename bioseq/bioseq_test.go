// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package bioseq_test

import (
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/js-arias/sciops/bioseq"
	"github.com/js-arias/sciops/calcerr"
)

func TestCodonTable(t *testing.T) {
	if len(bioseq.CodonTable) != 64 {
		t.Errorf("codon table: got %d codons, want 64", len(bioseq.CodonTable))
	}

	stops := 0
	for c, aa := range bioseq.CodonTable {
		if len(c) != 3 || strings.Trim(c, "ACGT") != "" {
			t.Errorf("invalid codon %q", c)
		}
		if aa == bioseq.Stop {
			stops++
		}
	}
	if stops != 3 {
		t.Errorf("stop codons: got %d, want 3", stops)
	}
	if got := bioseq.Codon("NNN"); got != bioseq.Unknown {
		t.Errorf("unknown codon: got %c, want %c", got, bioseq.Unknown)
	}
}

func TestClean(t *testing.T) {
	clean, removed := bioseq.Clean("acg t\nNxAN-")
	if clean != "ACGTA" {
		t.Errorf("clean: got %q, want %q", clean, "ACGTA")
	}
	if removed != "-NX" {
		t.Errorf("removed: got %q, want %q", removed, "-NX")
	}
}

func TestGCContent(t *testing.T) {
	tests := map[string]struct {
		seq  string
		want float64
	}{
		"all gc":       {"GCGC", 1},
		"half":         {"ATGC", 0.5},
		"lower case":   {"atgc", 0.5},
		"no gc":        {"ATTA", 0},
		"with invalid": {"GGNNAA", 0.5},
	}

	for name, test := range tests {
		got, err := bioseq.GCContent(test.seq)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if math.Abs(got-test.want) > 1e-12 {
			t.Errorf("%s: got %g, want %g", name, got, test.want)
		}
	}

	if _, err := bioseq.GCContent("NNN"); !calcerr.Is(err, calcerr.Validation) {
		t.Errorf("invalid sequence: got error %v, want a validation error", err)
	}
}

func TestTranslate(t *testing.T) {
	tests := map[string]struct {
		seq   string
		frame int
		stop  bioseq.StopPolicy
		start bioseq.StartPolicy
		want  string
	}{
		"stop":             {"ATGTAA", 0, bioseq.StopAtStop, bioseq.FullSequence, "M"},
		"read through":     {"ATGTAAGGG", 0, bioseq.ReadThrough, bioseq.FullSequence, "M*G"},
		"trailing bases":   {"ATGGGGCC", 0, bioseq.StopAtStop, bioseq.FullSequence, "MG"},
		"frame":            {"CATGGGTGA", 1, bioseq.StopAtStop, bioseq.FullSequence, "MG"},
		"unknown codon":    {"ATGNNNGGG", 0, bioseq.StopAtStop, bioseq.FullSequence, "MXG"},
		"orf only":         {"CCCATGAAATAG", 0, bioseq.StopAtStop, bioseq.ORFOnly, "MK"},
		"orf second start": {"CATGCCATGAAA", 0, bioseq.StopAtStop, bioseq.ORFOnly, "MK"},
		"start at stop":    {"TAAATG", 0, bioseq.StopAtStop, bioseq.FullSequence, ""},
		"multi-byte base":  {"ATGÑAAGGG", 0, bioseq.ReadThrough, bioseq.FullSequence, "MXG"},
		"multi-byte first": {"éATGAAA", 0, bioseq.StopAtStop, bioseq.FullSequence, "XE"},
	}

	for name, test := range tests {
		got, err := bioseq.Translate(test.seq, test.frame, test.stop, test.start)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if got != test.want {
			t.Errorf("%s: got %q, want %q", name, got, test.want)
		}
	}
}

func TestTranslateErrors(t *testing.T) {
	if _, err := bioseq.Translate("", 0, bioseq.StopAtStop, bioseq.FullSequence); !calcerr.Is(err, calcerr.Validation) {
		t.Errorf("empty sequence: got error %v, want a validation error", err)
	}
	if _, err := bioseq.Translate("ATG", 3, bioseq.StopAtStop, bioseq.FullSequence); !calcerr.Is(err, calcerr.Validation) {
		t.Errorf("invalid frame: got error %v, want a validation error", err)
	}
	if _, err := bioseq.Translate("CATGAA", 0, bioseq.StopAtStop, bioseq.ORFOnly); !calcerr.Is(err, calcerr.Validation) {
		t.Errorf("no in-frame start: got error %v, want a validation error", err)
	}
}

func TestFindORFs(t *testing.T) {
	tests := map[string]struct {
		seq    string
		frames []int
		minAA  int
		stop   bioseq.StopPolicy
		want   []bioseq.ORF
	}{
		"single": {
			seq:    "CCCATGGGGTAA",
			frames: []int{1, 2, 3},
			minAA:  2,
			stop:   bioseq.StopAtStop,
			want: []bioseq.ORF{
				{Frame: 1, Start: 4, End: 12, Protein: "MG"},
			},
		},
		"too short": {
			seq:    "CCCATGGGGTAA",
			frames: []int{1, 2, 3},
			minAA:  3,
			stop:   bioseq.StopAtStop,
		},
		"overlapping": {
			seq:    "ATGTAAATGCCC",
			frames: []int{1},
			minAA:  1,
			stop:   bioseq.StopAtStop,
			want: []bioseq.ORF{
				{Frame: 1, Start: 1, End: 6, Protein: "M"},
				{Frame: 1, Start: 7, End: 12, Protein: "MP"},
			},
		},
		"read through": {
			seq:    "ATGTAAATGCCC",
			frames: []int{1},
			minAA:  1,
			stop:   bioseq.ReadThrough,
			want: []bioseq.ORF{
				{Frame: 1, Start: 1, End: 12, Protein: "M*MP"},
				{Frame: 1, Start: 7, End: 12, Protein: "MP"},
			},
		},
		"nested start": {
			seq:    "ATGATGTGA",
			frames: []int{1},
			minAA:  1,
			stop:   bioseq.StopAtStop,
			want: []bioseq.ORF{
				{Frame: 1, Start: 1, End: 9, Protein: "MM"},
				{Frame: 1, Start: 4, End: 9, Protein: "M"},
			},
		},
		"frames sorted": {
			seq:    "AATGCCTAAATGTAG",
			frames: []int{3, 2, 2, 1},
			minAA:  1,
			stop:   bioseq.StopAtStop,
			want: []bioseq.ORF{
				{Frame: 1, Start: 10, End: 15, Protein: "M"},
				{Frame: 2, Start: 2, End: 13, Protein: "MPKC"},
			},
		},
	}

	for name, test := range tests {
		got, removed, err := bioseq.FindORFs(test.seq, test.frames, test.minAA, test.stop)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if removed != "" {
			t.Errorf("%s: removed: got %q, want none", name, removed)
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", name, diff)
		}
	}
}

func TestFindORFsInvalid(t *testing.T) {
	got, removed, err := bioseq.FindORFs("ccc atg ggg taa nn", []int{1}, 2, bioseq.StopAtStop)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != "N" {
		t.Errorf("removed: got %q, want %q", removed, "N")
	}
	want := []bioseq.ORF{{Frame: 1, Start: 4, End: 12, Protein: "MG"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	if _, _, err := bioseq.FindORFs("NNN", []int{1}, 1, bioseq.StopAtStop); !calcerr.Is(err, calcerr.Validation) {
		t.Errorf("invalid sequence: got error %v, want a validation error", err)
	}
	if _, _, err := bioseq.FindORFs("ATG", []int{4}, 1, bioseq.StopAtStop); !calcerr.Is(err, calcerr.Validation) {
		t.Errorf("invalid frame: got error %v, want a validation error", err)
	}
	if _, _, err := bioseq.FindORFs("ATG", nil, 1, bioseq.StopAtStop); !calcerr.Is(err, calcerr.Validation) {
		t.Errorf("no frames: got error %v, want a validation error", err)
	}
}

func TestParseFrames(t *testing.T) {
	got, err := bioseq.ParseFrames(" 3, 1,,1 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]int{1, 3}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	if _, err := bioseq.ParseFrames("1,two"); !calcerr.Is(err, calcerr.Parse) {
		t.Errorf("invalid frame: got error %v, want a parse error", err)
	}
	if _, err := bioseq.ParseFrames("0"); !calcerr.Is(err, calcerr.Validation) {
		t.Errorf("out of range frame: got error %v, want a validation error", err)
	}
}

func TestReadFASTA(t *testing.T) {
	in := `>seq1 some description
acgt ACGT
GGCC
>seq2
tt
`
	got, err := bioseq.ReadFASTA(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "ACGTACGTGGCCTT"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReadFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "seq.fasta")
	if err := os.WriteFile(name, []byte(">s\natg aaa\ntag\n"), 0o644); err != nil {
		t.Fatalf("unable to write file: %v", err)
	}

	got, err := bioseq.ReadFile(name)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "ATGAAATAG"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	missing := filepath.Join(t.TempDir(), "missing.fasta")
	_, err = bioseq.ReadFile(missing)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file: got error %v, want %v", err, fs.ErrNotExist)
	}
	if err != nil && !strings.Contains(err.Error(), "on file") {
		t.Errorf("missing file: error %q without file name", err)
	}
}
