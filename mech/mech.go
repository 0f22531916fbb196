// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package mech implements simple calculations
// of classical mechanics.
//
// All values are in SI units,
// and angles are in degrees.
package mech

import (
	"math"

	"github.com/js-arias/sciops/calcerr"
)

// Trajectory is the result of a projectile motion.
type Trajectory struct {
	Flight    float64 // time of flight (s)
	Range     float64 // horizontal range (m)
	MaxHeight float64 // maximum height (m)
	VX0       float64 // initial horizontal velocity (m/s)
	VY0       float64 // initial vertical velocity (m/s)
}

// Projectile returns the trajectory of a projectile
// launched with speed v0,
// at a given angle above the horizontal,
// from an initial height y0,
// in a uniform gravitational field g,
// without drag.
// The flight ends when the projectile reaches y = 0.
func Projectile(v0, angle, y0, g float64) (Trajectory, error) {
	if v0 < 0 {
		return Trajectory{}, calcerr.Validationf("initial speed must be non-negative, got %g", v0)
	}
	if g <= 0 {
		return Trajectory{}, calcerr.Validationf("gravitational acceleration must be positive, got %g", g)
	}

	theta := angle * math.Pi / 180
	vx0 := v0 * math.Cos(theta)
	vy0 := v0 * math.Sin(theta)

	// y(t) = y0 + vy0·t - g·t²/2
	a := -g / 2
	b := vy0
	c := y0
	disc := b*b - 4*a*c
	if disc < 0 {
		return Trajectory{}, calcerr.Validationf("no real impact time: the projectile never reaches y = 0")
	}
	t1 := (-b + math.Sqrt(disc)) / (2 * a)
	t2 := (-b - math.Sqrt(disc)) / (2 * a)
	flight := math.Max(t1, t2)

	maxH := y0
	if vy0 > 0 {
		tp := vy0 / g
		maxH = y0 + vy0*tp - g*tp*tp/2
	}

	return Trajectory{
		Flight:    flight,
		Range:     vx0 * flight,
		MaxHeight: maxH,
		VX0:       vx0,
		VY0:       vy0,
	}, nil
}

// Work returns the work done by a force
// along a displacement,
// with the given angle between them.
func Work(force, dist, angle float64) float64 {
	return force * dist * math.Cos(angle*math.Pi/180)
}

// Power returns the average power
// of a work done in a time interval.
func Power(work, t float64) (float64, error) {
	if t <= 0 {
		return 0, calcerr.Validationf("time must be positive, got %g", t)
	}
	return work / t, nil
}

// PendulumPeriod returns the period of a simple pendulum
// using the small angle approximation.
func PendulumPeriod(length, g float64) (float64, error) {
	if length <= 0 {
		return 0, calcerr.Validationf("length must be positive, got %g", length)
	}
	if g <= 0 {
		return 0, calcerr.Validationf("gravitational acceleration must be positive, got %g", g)
	}
	return 2 * math.Pi * math.Sqrt(length/g), nil
}

// OrbitPeriod returns the period of a Keplerian orbit
// with semi-major axis a
// around a body with standard gravitational parameter mu.
func OrbitPeriod(a, mu float64) (float64, error) {
	if a <= 0 {
		return 0, calcerr.Validationf("semi-major axis must be positive, got %g", a)
	}
	if mu <= 0 {
		return 0, calcerr.Validationf("gravitational parameter must be positive, got %g", mu)
	}
	return 2 * math.Pi * math.Sqrt(a*a*a/mu), nil
}
