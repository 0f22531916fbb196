// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package altaz implements a command to convert
// equatorial coordinates into the horizon of an observer.
package altaz

import (
	"fmt"
	"time"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/astro"
	"github.com/js-arias/sciops/calcerr"
	"github.com/js-arias/sciops/cmd/sciops/args"
	"github.com/js-arias/sciops/cmd/sciops/session"
)

var Command = &command.Command{
	Usage: `altaz --ra <right-ascension> --dec <declination>
	--lat <degrees> --lon <degrees> [--datetime <time>]`,
	Short: "convert RA/Dec into altitude and azimuth",
	Long: `
Command altaz converts equatorial coordinates (right ascension and
declination) into horizontal coordinates (altitude and azimuth) for an
observer at a given place and time.

The flags --ra and --dec are required and set the position of the object.
The right ascension can be given in hours ("10h12m45s", "10:12:45", "10.2")
or in marked degrees ("153.2deg"). The declination is given in degrees
("-12d30m00s", "-12:30:00", "-12.5").

The flags --lat and --lon are required and set the latitude and longitude
(east positive) of the observer, in degrees.

By default the current time is used. Use the flag --datetime, or -d, to set
an ISO-8601 time. A time without a zone is taken as UTC.

Azimuth is measured from the North (0°) towards the East (90°). See "sciops
help angles" for the accepted formats of angles and times.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var raFlag string
var decFlag string
var latFlag string
var lonFlag string
var dateFlag string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&raFlag, "ra", "", "")
	c.Flags().StringVar(&decFlag, "dec", "", "")
	c.Flags().StringVar(&latFlag, "lat", "", "")
	c.Flags().StringVar(&lonFlag, "lon", "", "")
	c.Flags().StringVar(&dateFlag, "datetime", "", "")
	c.Flags().StringVar(&dateFlag, "d", "", "")
}

func run(c *command.Command, _ []string) error {
	if raFlag == "" || decFlag == "" {
		return c.UsageError("flags --ra and --dec must be defined")
	}
	if latFlag == "" || lonFlag == "" {
		return c.UsageError("flags --lat and --lon must be defined")
	}

	ra, err := astro.ParseRA(raFlag)
	if err != nil {
		return err
	}
	dec, err := astro.ParseDec(decFlag)
	if err != nil {
		return err
	}
	if dec < -90 || dec > 90 {
		return calcerr.Validationf("declination %.6g out of range [-90, 90]", dec)
	}
	lat, err := args.Float("latitude", latFlag)
	if err != nil {
		return err
	}
	if lat < -90 || lat > 90 {
		return calcerr.Validationf("latitude %.6g out of range [-90, 90]", lat)
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

	lst := astro.LST(t, lon)
	alt, az := astro.EquatorialToHorizontal(ra, dec, lat, lst)

	s.Out.Printf("Observation time (UTC): %s", t.Format(time.RFC3339))
	s.Out.Printf("Local Sidereal Time   : %s", astro.FormatHours(lst))
	s.Out.Printf("RA %s => %.3f° | Dec %s => %.3f°", raFlag, ra, decFlag, dec)
	s.Out.Printf("Altitude: %s", s.Out.Value(fmt.Sprintf("%.2f°", alt)))
	s.Out.Printf("Azimuth : %s (0°=North, 90°=East)", s.Out.Value(fmt.Sprintf("%.2f°", az)))
	if alt < 0 {
		s.Out.Note("The object is below the horizon.")
	}
	return nil
}
