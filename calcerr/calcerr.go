// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package calcerr implements the error values
// returned by the sciops calculators.
//
// Every error has a kind,
// so the command layer can tell a malformed input
// from an out-of-domain value
// or an unknown lookup key.
package calcerr

import (
	"errors"
	"fmt"
)

// Kind is the class of a calculator error.
type Kind int

// Valid error kinds.
const (
	// Parse is a malformed angle, time, or number text.
	Parse Kind = iota + 1

	// Validation is an out-of-domain numeric input,
	// such as a negative length or a zero denominator.
	Validation

	// NotFound is an unknown lookup key,
	// such as a constant, a body, or a config key.
	NotFound
)

func (k Kind) String() string {
	switch k {
	case Parse:
		return "parse error"
	case Validation:
		return "validation error"
	case NotFound:
		return "not found"
	}
	return "unknown error"
}

// Error is an error produced by a calculator.
type Error struct {
	Kind Kind
	Msg  string

	// Hint is an optional human readable suggestion,
	// for example an example of a valid input.
	Hint string
}

func (e *Error) Error() string {
	if e.Hint == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Msg, e.Hint)
}

// WithHint returns a copy of the error
// with the given hint.
func (e *Error) WithHint(hint string) *Error {
	ne := *e
	ne.Hint = hint
	return &ne
}

// Parsef returns a new parse error.
func Parsef(format string, a ...any) *Error {
	return &Error{Kind: Parse, Msg: fmt.Sprintf(format, a...)}
}

// Validationf returns a new validation error.
func Validationf(format string, a ...any) *Error {
	return &Error{Kind: Validation, Msg: fmt.Sprintf(format, a...)}
}

// NotFoundf returns a new not found error.
func NotFoundf(format string, a ...any) *Error {
	return &Error{Kind: NotFound, Msg: fmt.Sprintf(format, a...)}
}

// Is reports whether any error in err's tree
// is a calculator error of the given kind.
func Is(err error, k Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == k
}
