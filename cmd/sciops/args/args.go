// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package args decodes the positional arguments
// of sciops commands.
package args

import (
	"strconv"
	"strings"

	"github.com/js-arias/sciops/calcerr"
)

// Float decodes a floating point argument.
// The name is used in the error message.
func Float(name, text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, calcerr.Parsef("invalid %s %q: expecting a number", name, text)
	}
	return v, nil
}

// Int decodes an integer argument.
func Int(name, text string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, calcerr.Parsef("invalid %s %q: expecting an integer", name, text)
	}
	return v, nil
}

// Floats decodes a list of floating point arguments.
// Values can be given as separated arguments,
// or as comma separated lists.
func Floats(name string, args []string) ([]float64, error) {
	var vs []float64
	for _, a := range args {
		for _, f := range strings.Split(a, ",") {
			if strings.TrimSpace(f) == "" {
				continue
			}
			v, err := Float(name, f)
			if err != nil {
				return nil, err
			}
			vs = append(vs, v)
		}
	}
	if len(vs) == 0 {
		return nil, calcerr.Validationf("expecting at least one %s", name)
	}
	return vs, nil
}
