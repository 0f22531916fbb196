// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package astro implements parsing of sky coordinates
// and the transformation of equatorial coordinates
// into the horizon of an observer.
//
// All angles are in degrees.
package astro

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/js-arias/sciops/calcerr"
)

const (
	raHint  = "try '10h12m45s', '10:12:45', or '153.2deg'"
	decHint = "try '-12d30m00s' or '-12:30:00'"
)

// ParseRA parses a right ascension
// and returns its value in degrees.
//
// Valid formats are decimal hours ("10.5"),
// sexagesimal hours ("10h12m45s", "10:12:45"),
// and degrees,
// if explicitly marked ("153.2d", "153.2°", "153.2deg").
// A leading sign applies to the whole value.
//
// A bare number without markers is read as hours
// if it is at most 24,
// otherwise it is read as degrees.
func ParseRA(text string) (float64, error) {
	raw := strings.TrimSpace(text)
	s := strings.ToLower(strings.ReplaceAll(raw, " ", ""))
	if s == "" {
		return 0, calcerr.Parsef("empty right ascension").WithHint(raHint)
	}

	// explicit degrees
	if strings.ContainsAny(s, "d°") {
		return ParseDec(raw)
	}

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var hours float64
	if !strings.ContainsAny(s, "hms:") {
		v, err := parseNumber(s)
		if err != nil {
			return 0, calcerr.Parsef("invalid right ascension %q", text).WithHint(raHint)
		}
		hours = v
		if v > 24 {
			hours = v / 15
		}
	} else {
		v, err := sexagesimal(s, "hms:")
		if err != nil {
			return 0, calcerr.Parsef("invalid right ascension %q: %v", text, err).WithHint(raHint)
		}
		hours = v
	}

	if neg {
		hours = -hours
	}
	return hours * 15, nil
}

// ParseDec parses a declination
// and returns its value in degrees.
//
// Valid formats are decimal degrees ("-12.5", "-12.5°")
// and sexagesimal degrees ("-12d30m00s", "-12:30:00", "-12° 30m").
// A leading sign applies to the whole value.
func ParseDec(text string) (float64, error) {
	raw := strings.TrimSpace(text)
	neg := strings.HasPrefix(raw, "-")

	s := strings.TrimLeft(raw, "+-")
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "deg", "d")
	s = strings.ReplaceAll(s, "°", "d")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0, calcerr.Parsef("empty declination").WithHint(decHint)
	}

	v, err := sexagesimal(s, "dms:")
	if err != nil {
		return 0, calcerr.Parsef("invalid declination %q: %v", text, err).WithHint(decHint)
	}
	if neg {
		v = -v
	}
	return v, nil
}

// Sexagesimal reads up to three components
// (units, minutes, seconds)
// separated by any of the given markers.
func sexagesimal(s, markers string) (float64, error) {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(markers, r)
	})
	if len(parts) == 0 {
		return 0, fmt.Errorf("no value")
	}
	if len(parts) > 3 {
		return 0, fmt.Errorf("too many components")
	}

	var v [3]float64
	for i, p := range parts {
		x, err := parseNumber(p)
		if err != nil {
			return 0, fmt.Errorf("component %q: not a number", p)
		}
		if i > 0 && x < 0 {
			return 0, fmt.Errorf("component %q: negative minutes or seconds", p)
		}
		v[i] = x
	}
	return v[0] + v[1]/60 + v[2]/3600, nil
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", s)
	}
	return v, nil
}

// FormatHours formats an angle in degrees
// as sexagesimal hours,
// for example "10h 12m 45.0s".
func FormatHours(deg float64) string {
	h := normalize(deg) / 15
	hh := int(h)
	mm := int((h - float64(hh)) * 60)
	ss := (h - float64(hh) - float64(mm)/60) * 3600
	return fmt.Sprintf("%02dh %02dm %04.1fs", hh, mm, ss)
}

// FormatDegrees formats an angle in degrees
// as signed sexagesimal degrees,
// for example "-12° 30' 00.0\"".
func FormatDegrees(deg float64) string {
	sign := "+"
	if deg < 0 {
		sign = "-"
	}
	v := math.Abs(deg)
	dd := int(v)
	mm := int((v - float64(dd)) * 60)
	ss := (v - float64(dd) - float64(mm)/60) * 3600
	return fmt.Sprintf("%s%02d° %02d' %04.1f\"", sign, dd, mm, ss)
}

// Normalize returns an angle in the range [0, 360).
func normalize(deg float64) float64 {
	v := math.Mod(deg, 360)
	if v < 0 {
		v += 360
	}
	if v >= 360 || v == 0 {
		// also removes negative zero
		return 0
	}
	return v
}
