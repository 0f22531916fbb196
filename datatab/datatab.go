// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package datatab reads small delimited data tables
// (CSV or TSV files)
// with a header row.
package datatab

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/js-arias/sciops/calcerr"
)

// A Table is a data table.
type Table struct {
	header []string
	cols   map[string]int
	rows   [][]string
}

// Read reads a table from a reader.
// The first row is the header.
//
// If delim is 0,
// the delimiter is a comma,
// unless the text has tabs
// but no commas,
// in which case the delimiter is a tab.
func Read(r io.Reader, delim rune) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if delim == 0 {
		delim = Guess(data)
	}

	tsv := csv.NewReader(bytes.NewReader(data))
	tsv.Comma = delim
	tsv.FieldsPerRecord = -1
	tsv.LazyQuotes = true

	head, err := tsv.Read()
	if err == io.EOF {
		return nil, calcerr.Validationf("table is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}

	t := &Table{
		cols: make(map[string]int, len(head)),
	}
	for i, h := range head {
		h = strings.TrimSpace(h)
		t.header = append(t.header, h)
		if _, dup := t.cols[h]; dup {
			continue
		}
		t.cols[h] = i
	}

	for {
		row, err := tsv.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("while reading data: %v", err)
		}
		if len(row) == 1 && strings.TrimSpace(row[0]) == "" {
			continue
		}
		t.rows = append(t.rows, row)
	}
	if len(t.rows) == 0 {
		return nil, calcerr.Validationf("table has no data rows")
	}
	return t, nil
}

// ReadFile reads a table from a file.
func ReadFile(name string, delim rune) (*Table, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Read(f, delim)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %w", name, err)
	}
	return t, nil
}

// Guess returns the delimiter of a text:
// a tab if the text has tabs but no commas,
// otherwise a comma.
func Guess(data []byte) rune {
	if !bytes.ContainsRune(data, ',') && bytes.ContainsRune(data, '\t') {
		return '\t'
	}
	return ','
}

// ParseDelim parses a delimiter given by a user.
// An empty string means that the delimiter
// should be guessed.
func ParseDelim(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case `\t`, "tab", "\t":
		return '\t', nil
	case "comma":
		return ',', nil
	}
	r := []rune(s)
	if len(r) != 1 || r[0] == '"' || r[0] == '\n' || r[0] == '\r' {
		return 0, calcerr.Parsef("invalid delimiter %q", s).WithHint("use a single character, or 'tab'")
	}
	return r[0], nil
}

// Header returns the column names of the table.
func (t *Table) Header() []string {
	h := make([]string, len(t.header))
	copy(h, t.header)
	return h
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) col(name string) (int, error) {
	i, ok := t.cols[name]
	if !ok {
		return 0, calcerr.NotFoundf("column %q not found", name).WithHint("available: " + strings.Join(t.header, ", "))
	}
	return i, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func number(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	// NaN or Inf are used as missing value markers
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Column returns the numeric values of a column.
// Blank, non-numeric, or non-finite (NaN, Inf) cells are skipped.
func (t *Table) Column(name string) ([]float64, error) {
	i, err := t.col(name)
	if err != nil {
		return nil, err
	}

	var vs []float64
	for _, row := range t.rows {
		v, ok := number(cell(row, i))
		if !ok {
			continue
		}
		vs = append(vs, v)
	}
	return vs, nil
}

// Pairs returns the values of two columns
// from the rows in which both values are numeric.
func (t *Table) Pairs(x, y string) (xs, ys []float64, err error) {
	xi, err := t.col(x)
	if err != nil {
		return nil, nil, err
	}
	yi, err := t.col(y)
	if err != nil {
		return nil, nil, err
	}

	for _, row := range t.rows {
		xv, ok := number(cell(row, xi))
		if !ok {
			continue
		}
		yv, ok := number(cell(row, yi))
		if !ok {
			continue
		}
		xs = append(xs, xv)
		ys = append(ys, yv)
	}
	return xs, ys, nil
}

// Head returns the first n rows of the table.
// Each row has the same number of cells as the header.
// At least one row is returned.
func (t *Table) Head(n int) [][]string {
	n = max(n, 1)
	n = min(n, len(t.rows))

	rows := make([][]string, 0, n)
	for _, row := range t.rows[:n] {
		r := make([]string, len(t.header))
		for i := range r {
			r[i] = cell(row, i)
		}
		rows = append(rows, r)
	}
	return rows
}
