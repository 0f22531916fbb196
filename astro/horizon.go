// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package astro

import (
	"math"

	"github.com/js-arias/earth"
	"github.com/js-arias/sciops/calcerr"
)

// EquatorialToHorizontal converts equatorial coordinates
// (right ascension and declination)
// into horizontal coordinates
// (altitude and azimuth)
// for an observer at the given latitude
// and local sidereal time.
//
// Azimuth is measured from the North towards the East,
// in the range [0, 360).
// At the zenith or nadir the azimuth is undefined,
// and 0 is returned.
func EquatorialToHorizontal(ra, dec, lat, lst float64) (alt, az float64) {
	dr := toRad(dec)
	lr := toRad(lat)
	ha := toRad(lst) - toRad(ra)

	sinAlt := math.Sin(dr)*math.Sin(lr) + math.Cos(dr)*math.Cos(lr)*math.Cos(ha)
	// rounding can take the value out of the asin domain
	sinAlt = math.Max(-1, math.Min(1, sinAlt))
	a := math.Asin(sinAlt)

	if math.Abs(math.Cos(a)) < 1e-10 {
		return toDeg(a), 0
	}

	// both terms are scaled by cos(alt)·cos(lat) >= 0,
	// which leaves the angle unchanged
	y := -math.Sin(ha) * math.Cos(dr) * math.Cos(lr)
	x := math.Sin(dr) - math.Sin(a)*math.Sin(lr)
	return toDeg(a), normalize(toDeg(math.Atan2(y, x)))
}

// Separation returns the angular distance,
// in degrees,
// between two positions in equatorial coordinates.
func Separation(ra1, dec1, ra2, dec2 float64) (float64, error) {
	for _, d := range []float64{dec1, dec2} {
		if d < -90 || d > 90 {
			return 0, calcerr.Validationf("declination %.6g out of range [-90, 90]", d)
		}
	}

	p1 := earth.NewPoint(dec1, longitude(ra1))
	p2 := earth.NewPoint(dec2, longitude(ra2))
	return toDeg(earth.Distance(p1, p2)), nil
}

// Longitude maps a right ascension
// into the range [-180, 180).
func longitude(ra float64) float64 {
	v := normalize(ra)
	if v >= 180 {
		v -= 360
	}
	return v
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func toDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
