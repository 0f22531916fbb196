// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package session prepares the environment
// shared by sciops commands:
// the configuration,
// the output printer,
// and the diagnostics logger.
package session

import (
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/clilog"
	"github.com/js-arias/sciops/config"
	"github.com/js-arias/sciops/physconst"
	"github.com/js-arias/sciops/termout"
	"go.uber.org/zap"
)

// DefaultBody is the body used for presets
// when neither a flag nor the configuration
// defines one.
const DefaultBody = "earth"

// A Session holds the environment of a command.
type Session struct {
	Config *config.Config
	Out    *termout.Printer
	Log    *zap.Logger

	// ConfigErr is the error found
	// while reading a damaged configuration file.
	// Invalid entries use default values.
	ConfigErr error
}

// Open loads the configuration
// and prepares the output of the command.
//
// A damaged configuration file
// is reported as a warning,
// and the command runs with the valid entries.
func Open(c *command.Command) (*Session, error) {
	log := clilog.New(c.Stderr())
	cfg, err := config.Load()
	if cfg == nil {
		return nil, err
	}
	if err != nil {
		log.Warn("invalid configuration entries, using defaults",
			zap.String("file", cfg.Name()),
			zap.Error(err),
		)
	}
	return &Session{
		Config:    cfg,
		Out:       termout.New(c.Stdout(), cfg.Color()),
		Log:       log,
		ConfigErr: err,
	}, nil
}

// Close flushes the logger.
func (s *Session) Close() {
	s.Log.Sync()
}

// Body resolves the value of a --body flag.
// The name "none" disables presets.
// If the name is empty,
// the default body of the configuration is used,
// or Earth if there is no default.
func (s *Session) Body(name string) (physconst.Body, bool, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none":
		return physconst.Body{}, false, nil
	case "":
		name = s.Config.Body()
		if name == "" {
			name = DefaultBody
		}
	}

	b, err := physconst.GetBody(name)
	if err != nil {
		return physconst.Body{}, false, err
	}
	s.Log.Debug("body preset", zap.String("body", b.Key))
	return b, true, nil
}

// Explicit reports whether a --body flag
// names a body.
func Explicit(body string) bool {
	b := strings.ToLower(strings.TrimSpace(body))
	return b != "" && b != "none"
}
