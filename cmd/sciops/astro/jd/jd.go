// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package jd implements a command to calculate
// the Julian Date of a time.
package jd

import (
	"fmt"
	"time"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/astro"
	"github.com/js-arias/sciops/cmd/sciops/session"
)

var Command = &command.Command{
	Usage: "jd [--datetime <time>]",
	Short: "calculate the Julian Date of a time",
	Long: `
Command jd prints the Julian Date, the days since the J2000.0 epoch, and the
Greenwich mean sidereal time of a given time.

By default the current time is used. Use the flag --datetime, or -d, to set
an ISO-8601 time. A time without a zone is taken as UTC.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var dateFlag string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&dateFlag, "datetime", "", "")
	c.Flags().StringVar(&dateFlag, "d", "", "")
}

func run(c *command.Command, _ []string) error {
	t, err := astro.ParseTime(dateFlag)
	if err != nil {
		return err
	}

	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	jd := astro.JulianDate(t)
	gmst := astro.GMST(t)
	s.Out.Printf("Time (UTC): %s", t.Format(time.RFC3339))
	s.Out.Printf("JD        : %s", s.Out.Value(fmt.Sprintf("%.6f", jd)))
	s.Out.Printf("JD - J2000: %.6f days", jd-astro.J2000)
	s.Out.Printf("GMST      : %.3f° (%s)", gmst, astro.FormatHours(gmst))
	return nil
}
