// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package session_test

import (
	"path/filepath"
	"testing"

	"github.com/js-arias/sciops/calcerr"
	"github.com/js-arias/sciops/cmd/sciops/session"
	"github.com/js-arias/sciops/config"
	"go.uber.org/zap"
)

func TestBody(t *testing.T) {
	cfg := config.New(filepath.Join(t.TempDir(), "config.tab"))
	s := &session.Session{Config: cfg, Log: zap.NewNop()}

	tests := []struct {
		name   string
		body   string
		want   string
		preset bool
	}{
		{"default", "", "earth", true},
		{"explicit", "Moon", "moon", true},
		{"disabled", "none", "", false},
	}
	for _, test := range tests {
		b, ok, err := s.Body(test.body)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		if ok != test.preset {
			t.Errorf("%s: preset: got %v, want %v", test.name, ok, test.preset)
		}
		if b.Key != test.want {
			t.Errorf("%s: body: got %q, want %q", test.name, b.Key, test.want)
		}
	}

	if err := cfg.Set(config.DefaultBody, "mars"); err != nil {
		t.Fatalf("set body: %v", err)
	}
	b, _, err := s.Body("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Key != "mars" {
		t.Errorf("configured body: got %q, want %q", b.Key, "mars")
	}

	if _, _, err := s.Body("vulcan"); !calcerr.Is(err, calcerr.NotFound) {
		t.Errorf("unknown body: got error %v, want a not found error", err)
	}
}

func TestExplicit(t *testing.T) {
	for body, want := range map[string]bool{
		"":      false,
		"none":  false,
		"NONE":  false,
		"earth": true,
	} {
		if got := session.Explicit(body); got != want {
			t.Errorf("explicit %q: got %v, want %v", body, got, want)
		}
	}
}
