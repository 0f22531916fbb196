// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package clilog builds the logger used by sciops commands
// to report diagnostics.
package clilog

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvLevel is the environment variable
// that sets the logging level.
const EnvLevel = "SCIOPS_LOG"

// New returns a logger that writes human readable lines
// into w.
// The level is read from the SCIOPS_LOG environment variable
// (debug, info, warn, or error);
// by default only warnings and errors are reported.
func New(w io.Writer) *zap.Logger {
	return NewLevel(w, level(os.Getenv(EnvLevel)))
}

// NewLevel returns a logger with an explicit level.
func NewLevel(w io.Writer, lvl zapcore.Level) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	enc.CallerKey = ""
	enc.NameKey = ""
	enc.StacktraceKey = ""
	enc.EncodeLevel = zapcore.LowercaseLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(enc),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(lvl),
	)
	return zap.New(core)
}

func level(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "error":
		return zapcore.ErrorLevel
	}
	return zapcore.WarnLevel
}
