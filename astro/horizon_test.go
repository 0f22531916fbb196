// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package astro_test

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/js-arias/sciops/astro"
	"github.com/js-arias/sciops/calcerr"
)

func TestEquatorialToHorizontal(t *testing.T) {
	tests := map[string]struct {
		ra, dec, lat, lst float64
		alt, az           float64
	}{
		"zenith":         {ra: 100, dec: 0, lat: 0, lst: 100, alt: 90, az: 0},
		"south meridian": {ra: 30, dec: 0, lat: 45, lst: 30, alt: 45, az: 180},
		"north meridian": {ra: 30, dec: 60, lat: 45, lst: 30, alt: 75, az: 0},
		"east horizon":   {ra: 90, dec: 0, lat: 0, lst: 0, alt: 0, az: 90},
		"west horizon":   {ra: 0, dec: 0, lat: 0, lst: 90, alt: 0, az: 270},
		"nadir":          {ra: 0, dec: 0, lat: 0, lst: 180, alt: -90, az: 0},
	}

	for name, test := range tests {
		alt, az := astro.EquatorialToHorizontal(test.ra, test.dec, test.lat, test.lst)
		if math.Abs(alt-test.alt) > 1e-9 {
			t.Errorf("%s: altitude: got %.10f, want %.10f", name, alt, test.alt)
		}
		if d := math.Abs(az - test.az); d > 1e-9 && math.Abs(d-360) > 1e-9 {
			t.Errorf("%s: azimuth: got %.10f, want %.10f", name, az, test.az)
		}
	}
}

func TestAzimuthNorthZero(t *testing.T) {
	// object on the meridian, north of a southern observer
	_, az := astro.EquatorialToHorizontal(10, 0, -45, 10)
	if az != 0 || math.Signbit(az) {
		t.Errorf("azimuth: got %v, want positive zero", az)
	}
	if got := fmt.Sprintf("%.2f", az); got != "0.00" {
		t.Errorf("azimuth format: got %q, want %q", got, "0.00")
	}
}

func TestVenusWashington(t *testing.T) {
	// Meeus, Astronomical Algorithms, example 13.b
	tm := time.Date(1987, 4, 10, 19, 21, 0, 0, time.UTC)
	lon, _ := astro.ParseDec("-77d03m56s")
	lat, _ := astro.ParseDec("38d55m17s")
	ra, _ := astro.ParseRA("23h09m16.641s")
	dec, _ := astro.ParseDec("-6d43m11.61s")

	alt, az := astro.EquatorialToHorizontal(ra, dec, lat, astro.LST(tm, lon))
	if math.Abs(alt-15.1249) > 0.01 {
		t.Errorf("altitude: got %.4f, want 15.1249", alt)
	}
	if math.Abs(az-248.0337) > 0.01 {
		t.Errorf("azimuth: got %.4f, want 248.0337", az)
	}
}

func TestHorizontalPeriodic(t *testing.T) {
	for ra := 0.0; ra < 360; ra += 37.5 {
		for dec := -85.0; dec <= 85; dec += 17 {
			for lat := -80.0; lat <= 80; lat += 20 {
				for lst := 3.0; lst < 360; lst += 61 {
					alt1, az1 := astro.EquatorialToHorizontal(ra, dec, lat, lst)
					alt2, az2 := astro.EquatorialToHorizontal(ra, dec, lat, lst+360)
					if math.Abs(alt1-alt2) > 1e-9 || math.Abs(az1-az2) > 1e-7 {
						t.Fatalf("ra %g dec %g lat %g lst %g: got (%g, %g) and (%g, %g) after 360°", ra, dec, lat, lst, alt1, az1, alt2, az2)
					}
					if alt1 < -90 || alt1 > 90 {
						t.Fatalf("ra %g dec %g lat %g lst %g: altitude %g out of range", ra, dec, lat, lst, alt1)
					}
					if az1 < 0 || az1 >= 360 {
						t.Fatalf("ra %g dec %g lat %g lst %g: azimuth %g out of range", ra, dec, lat, lst, az1)
					}
				}
			}
		}
	}
}

func TestSeparation(t *testing.T) {
	tests := map[string]struct {
		ra1, dec1, ra2, dec2 float64
		want                 float64
	}{
		"same point":  {10, 20, 10, 20, 0},
		"quarter":     {0, 0, 90, 0, 90},
		"across pole": {0, 89, 180, 89, 2},
		"wrapped ra":  {359, 0, 1, 0, 2},
		"poles":       {0, 90, 0, -90, 180},
		"ra over 180": {200, 10, 200, -10, 20},
	}

	for name, test := range tests {
		got, err := astro.Separation(test.ra1, test.dec1, test.ra2, test.dec2)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if math.Abs(got-test.want) > 1e-5 {
			t.Errorf("%s: got %.8f, want %.8f", name, got, test.want)
		}
	}

	if _, err := astro.Separation(0, 91, 0, 0); !calcerr.Is(err, calcerr.Validation) {
		t.Errorf("invalid declination: got error %v, want a validation error", err)
	}
}
