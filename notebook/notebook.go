// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package notebook implements an append-only lab notebook.
//
// A notebook is a markdown text file
// with one entry per line,
// each line prefixed with the local time
// of the entry:
//
//	- [2024-06-01T10:00:00] sample A centrifuged at 4000 rpm
package notebook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/js-arias/sciops/calcerr"
)

// TimeFormat is the layout of the entry timestamps.
const TimeFormat = "2006-01-02T15:04:05"

// Entry formats a notebook line
// for the given text and time.
func Entry(text string, t time.Time) string {
	text = strings.Join(strings.Fields(text), " ")
	return fmt.Sprintf("- [%s] %s", t.Local().Format(TimeFormat), text)
}

// Append adds an entry to the notebook file,
// creating the file and its folder if needed.
// It returns the written line.
func Append(name, text string, t time.Time) (line string, err error) {
	if strings.TrimSpace(text) == "" {
		return "", calcerr.Validationf("empty notebook entry")
	}
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return "", err
	}

	f, err := os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return "", err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	line = Entry(text, t)
	if _, err := fmt.Fprintf(f, "%s\n", line); err != nil {
		return "", fmt.Errorf("on file %q: %v", name, err)
	}
	return line, nil
}

// Read returns the content of a notebook file.
// A missing notebook is reported as a not found error.
func Read(name string) (string, error) {
	b, err := os.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return "", calcerr.NotFoundf("notebook %q is empty (file not found)", name)
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}
