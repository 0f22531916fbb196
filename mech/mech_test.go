// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package mech_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/js-arias/sciops/calcerr"
	"github.com/js-arias/sciops/mech"
)

func TestProjectile(t *testing.T) {
	tests := map[string]struct {
		v0, angle, y0, g float64
		want             mech.Trajectory
	}{
		"flat 45": {
			v0: 10, angle: 45, y0: 0, g: 10,
			want: mech.Trajectory{
				Flight:    math.Sqrt2,
				Range:     10,
				MaxHeight: 2.5,
				VX0:       10 / math.Sqrt2,
				VY0:       10 / math.Sqrt2,
			},
		},
		"horizontal from a cliff": {
			v0: 5, angle: 0, y0: 20, g: 10,
			want: mech.Trajectory{
				Flight:    2,
				Range:     10,
				MaxHeight: 20,
				VX0:       5,
				VY0:       0,
			},
		},
		"vertical": {
			v0: 20, angle: 90, y0: 0, g: 10,
			want: mech.Trajectory{
				Flight:    4,
				Range:     0,
				MaxHeight: 20,
				VX0:       0,
				VY0:       20,
			},
		},
	}

	for name, test := range tests {
		got, err := mech.Projectile(test.v0, test.angle, test.y0, test.g)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if diff := cmp.Diff(test.want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", name, diff)
		}
	}
}

func TestProjectileErrors(t *testing.T) {
	if _, err := mech.Projectile(1, 10, -100, 9.8); !calcerr.Is(err, calcerr.Validation) {
		t.Errorf("no impact: got error %v, want a validation error", err)
	}
	if _, err := mech.Projectile(1, 10, 0, 0); !calcerr.Is(err, calcerr.Validation) {
		t.Errorf("zero g: got error %v, want a validation error", err)
	}
}

func TestWorkPower(t *testing.T) {
	if got := mech.Work(10, 2, 60); math.Abs(got-10) > 1e-9 {
		t.Errorf("work: got %g, want 10", got)
	}
	if got := mech.Work(10, 2, 0); got != 20 {
		t.Errorf("work: got %g, want 20", got)
	}

	p, err := mech.Power(100, 4)
	if err != nil {
		t.Fatalf("power: unexpected error: %v", err)
	}
	if p != 25 {
		t.Errorf("power: got %g, want 25", p)
	}
	if _, err := mech.Power(100, 0); !calcerr.Is(err, calcerr.Validation) {
		t.Errorf("power: got error %v, want a validation error", err)
	}
}

func TestPeriods(t *testing.T) {
	p, err := mech.PendulumPeriod(1, 9.80665)
	if err != nil {
		t.Fatalf("pendulum: unexpected error: %v", err)
	}
	if math.Abs(p-2.006409) > 1e-6 {
		t.Errorf("pendulum: got %.7f, want 2.006409", p)
	}
	if _, err := mech.PendulumPeriod(-1, 9.8); !calcerr.Is(err, calcerr.Validation) {
		t.Errorf("pendulum: got error %v, want a validation error", err)
	}

	// geostationary orbit
	o, err := mech.OrbitPeriod(42164e3, 3.986004418e14)
	if err != nil {
		t.Fatalf("orbit: unexpected error: %v", err)
	}
	if math.Abs(o-86164) > 1 {
		t.Errorf("orbit: got %.1f, want 86164", o)
	}
	if _, err := mech.OrbitPeriod(1, 0); !calcerr.Is(err, calcerr.Validation) {
		t.Errorf("orbit: got error %v, want a validation error", err)
	}
}
