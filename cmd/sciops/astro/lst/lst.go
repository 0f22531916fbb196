// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package lst implements a command to calculate
// the local sidereal time of an observer.
package lst

import (
	"fmt"
	"time"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/astro"
	"github.com/js-arias/sciops/cmd/sciops/args"
	"github.com/js-arias/sciops/cmd/sciops/session"
)

var Command = &command.Command{
	Usage: "lst --lon <degrees> [--datetime <time>]",
	Short: "calculate the local sidereal time",
	Long: `
Command lst calculates the local sidereal time (LST) for an observer at a
given longitude.

The flag --lon is required and sets the longitude of the observer, in
degrees, east positive.

By default the current time is used. Use the flag --datetime, or -d, to set
an ISO-8601 time, for example "2024-03-20T21:00:00Z". A time without a zone
is taken as UTC.

The sidereal time is printed in degrees and in hours. See "sciops help
angles" for the accepted formats of angles and times.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var lonFlag string
var dateFlag string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&lonFlag, "lon", "", "")
	c.Flags().StringVar(&dateFlag, "datetime", "", "")
	c.Flags().StringVar(&dateFlag, "d", "", "")
}

func run(c *command.Command, _ []string) error {
	if lonFlag == "" {
		return c.UsageError("flag --lon must be defined")
	}
	lon, err := args.Float("longitude", lonFlag)
	if err != nil {
		return err
	}

	t, err := astro.ParseTime(dateFlag)
	if err != nil {
		return err
	}

	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	v := astro.LST(t, lon)
	s.Out.Printf("LST @ %s for lon %+.3f°", t.Format(time.RFC3339), lon)
	s.Out.Printf("Degrees: %s", s.Out.Value(fmt.Sprintf("%.3f°", v)))
	s.Out.Printf("Hours  : %s", s.Out.Value(astro.FormatHours(v)))
	return nil
}
