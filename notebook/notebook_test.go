// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package notebook_test

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/js-arias/sciops/calcerr"
	"github.com/js-arias/sciops/notebook"
)

func TestNotebook(t *testing.T) {
	name := filepath.Join(t.TempDir(), "notes", "lab.md")

	if _, err := notebook.Read(name); !calcerr.Is(err, calcerr.NotFound) {
		t.Fatalf("missing notebook: got error %v, want a not found error", err)
	}

	t1 := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.Local)
	t2 := t1.Add(90 * time.Second)
	entries := []struct {
		text string
		t    time.Time
		want string
	}{
		{"sample A centrifuged", t1, "- [2024-06-01T10:00:00] sample A centrifuged"},
		{"  pH   7.4\n", t2, "- [2024-06-01T10:01:30] pH 7.4"},
	}
	for _, e := range entries {
		line, err := notebook.Append(name, e.text, e.t)
		if err != nil {
			t.Fatalf("append %q: %v", e.text, err)
		}
		if line != e.want {
			t.Errorf("append %q: got line %q, want %q", e.text, line, e.want)
		}
	}

	content, err := notebook.Read(name)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(content), "\n")
	if len(lines) != len(entries) {
		t.Fatalf("lines: got %d, want %d", len(lines), len(entries))
	}
	for i, e := range entries {
		if lines[i] != e.want {
			t.Errorf("line %d: got %q, want %q", i, lines[i], e.want)
		}
	}

	if _, err := notebook.Append(name, "   ", t1); !calcerr.Is(err, calcerr.Validation) {
		t.Errorf("empty entry: got error %v, want a validation error", err)
	}
}
