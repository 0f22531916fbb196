// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package astro

import (
	"math"
	"strings"
	"time"

	"github.com/js-arias/sciops/calcerr"
)

// J2000 is the Julian Date of the J2000.0 epoch
// (January 1, 2000, 12:00:00 TT).
const J2000 = 2451545.0

// Now returns the current time.
// It is a variable so it can be fixed in tests.
var now = time.Now

// Layouts for ISO-8601 times with a time zone.
var zoneLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04Z07:00",
}

// Layouts for ISO-8601 times without a time zone.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTime parses an ISO-8601 time
// and returns it in UTC.
// A trailing "Z" indicates UTC,
// and a time without a time zone is assumed to be in UTC.
// If the text is empty,
// it returns the current time.
func ParseTime(text string) (time.Time, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return now().UTC(), nil
	}

	for _, l := range zoneLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t.UTC(), nil
		}
	}
	for _, l := range localLayouts {
		if t, err := time.ParseInLocation(l, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, calcerr.Parsef("invalid time %q", text).WithHint("use ISO format like '2024-06-01T10:00:00Z'")
}

// JulianDate returns the Julian Date of a time.
//
// It uses the algorithm of Meeus:
// January and February are taken as months 13 and 14
// of the previous year,
// and the Gregorian calendar correction is applied.
func JulianDate(t time.Time) float64 {
	t = t.UTC()
	y := float64(t.Year())
	m := float64(t.Month())
	h := float64(t.Hour()) + float64(t.Minute())/60 + (float64(t.Second())+float64(t.Nanosecond())/1e9)/3600
	d := float64(t.Day()) + h/24

	if m <= 2 {
		y -= 1
		m += 12
	}

	a := math.Floor(y / 100)
	b := 2 - a + math.Floor(a/4)

	return math.Floor(365.25*(y+4716)) + math.Floor(30.6001*(m+1)) + d + b - 1524.5
}

// GMST returns the Greenwich mean sidereal time
// of a time,
// in degrees in the range [0, 360).
func GMST(t time.Time) float64 {
	jd := JulianDate(t)
	d := jd - J2000
	c := d / 36525.0

	gmst := 280.46061837 + 360.98564736629*d + 0.000387933*c*c - c*c*c/38710000.0
	return normalize(gmst)
}

// LST returns the local sidereal time
// of a time,
// for a longitude
// (east positive),
// in degrees in the range [0, 360).
func LST(t time.Time, lon float64) float64 {
	return normalize(GMST(t) + lon)
}
