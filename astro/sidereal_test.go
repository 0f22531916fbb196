// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package astro

import (
	"math"
	"testing"
	"time"

	"github.com/js-arias/sciops/calcerr"
)

func TestJulianDate(t *testing.T) {
	tests := map[string]struct {
		t    time.Time
		want float64
	}{
		"J2000":         {time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC), 2451545.0},
		"sputnik":       {time.Date(1957, 10, 4, 19, 26, 24, 0, time.UTC), 2436116.31},
		"january":       {time.Date(1988, 1, 27, 0, 0, 0, 0, time.UTC), 2447187.5},
		"meeus 12.b":    {time.Date(1987, 4, 10, 19, 21, 0, 0, time.UTC), 2446896.30625},
		"non-UTC input": {time.Date(2000, 1, 1, 14, 0, 0, 0, time.FixedZone("EET", 2*3600)), 2451545.0},
	}

	for name, test := range tests {
		if got := JulianDate(test.t); math.Abs(got-test.want) > 1e-6 {
			t.Errorf("%s: got %.6f, want %.6f", name, got, test.want)
		}
	}
}

func TestGMST(t *testing.T) {
	tests := map[string]struct {
		t    time.Time
		want float64
	}{
		"J2000":      {time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC), 280.46061837},
		"meeus 12.a": {time.Date(1987, 4, 10, 0, 0, 0, 0, time.UTC), 197.693195},
		"meeus 12.b": {time.Date(1987, 4, 10, 19, 21, 0, 0, time.UTC), 128.7378734},
	}

	for name, test := range tests {
		if got := GMST(test.t); math.Abs(got-test.want) > 1e-4 {
			t.Errorf("%s: got %.7f, want %.7f", name, got, test.want)
		}
	}
}

func TestLSTRange(t *testing.T) {
	start := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 2000; i++ {
		tm := start.Add(time.Duration(i) * 997 * time.Hour)
		for _, lon := range []float64{-180, -77.0656, 0, 0.1, 179.999, 360, 725} {
			lst := LST(tm, lon)
			if lst < 0 || lst >= 360 {
				t.Fatalf("LST(%v, %.4f) = %.10f, out of range [0, 360)", tm, lon, lst)
			}
		}
	}
}

func TestParseTime(t *testing.T) {
	fixed := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	now = func() time.Time { return fixed.In(time.FixedZone("X", 3600)) }
	defer func() { now = time.Now }()

	tests := map[string]struct {
		text string
		want time.Time
	}{
		"empty is now":   {"", fixed},
		"zulu":           {"2024-06-01T10:00:00Z", fixed},
		"offset":         {"2024-06-01T12:00:00+02:00", fixed},
		"no zone":        {"2024-06-01T10:00:00", fixed},
		"minutes":        {"2024-06-01T10:00", fixed},
		"space":          {"2024-06-01 10:00:00", fixed},
		"fraction":       {"2024-06-01T10:00:00.5Z", fixed.Add(500 * time.Millisecond)},
		"date only":      {"2024-06-01", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		"space and zone": {"2024-06-01 11:00:00+01:00", fixed},
	}

	for name, test := range tests {
		got, err := ParseTime(test.text)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if !got.Equal(test.want) || got.Location() != time.UTC {
			t.Errorf("%s: ParseTime(%q): got %v, want %v", name, test.text, got, test.want)
		}
	}

	for _, s := range []string{"yesterday", "2024-13-01", "01/06/2024 10:00"} {
		if _, err := ParseTime(s); !calcerr.Is(err, calcerr.Parse) {
			t.Errorf("ParseTime(%q): got error %v, want a parse error", s, err)
		}
	}
}
