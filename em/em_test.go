// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package em_test

import (
	"math"
	"testing"

	"github.com/js-arias/sciops/calcerr"
	"github.com/js-arias/sciops/em"
)

func TestCoulomb(t *testing.T) {
	f, err := em.Coulomb(1e-6, 1e-6, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(f.Magnitude-8.9875517923e-3) > 1e-15 {
		t.Errorf("magnitude: got %g, want 8.9875517923e-3", f.Magnitude)
	}
	if !f.Repulsive {
		t.Errorf("equal charges: got attractive, want repulsive")
	}

	f, _ = em.Coulomb(2e-6, -1e-6, 2)
	if math.Abs(f.Magnitude-4.49377589615e-3) > 1e-15 {
		t.Errorf("magnitude: got %g, want 4.49377589615e-3", f.Magnitude)
	}
	if f.Repulsive {
		t.Errorf("opposite charges: got repulsive, want attractive")
	}

	if _, err := em.Coulomb(1, 1, 0); !calcerr.Is(err, calcerr.Validation) {
		t.Errorf("zero distance: got error %v, want a validation error", err)
	}
}

func TestReactance(t *testing.T) {
	f := 1 / (2 * math.Pi)
	r, err := em.Reactance(f, 2, 0.25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(r.XL-2) > 1e-12 || math.Abs(r.XC+4) > 1e-12 || math.Abs(r.Total+2) > 1e-12 {
		t.Errorf("got %+v, want XL 2, XC -4, total -2", r)
	}

	r, _ = em.Reactance(50, 0.1, 0)
	if r.XC != 0 || math.Abs(r.Total-10*math.Pi) > 1e-9 {
		t.Errorf("inductor only: got %+v", r)
	}

	if _, err := em.Reactance(50, 0, 0); !calcerr.Is(err, calcerr.Validation) {
		t.Errorf("no components: got error %v, want a validation error", err)
	}
	if _, err := em.Reactance(0, 1, 1); !calcerr.Is(err, calcerr.Validation) {
		t.Errorf("zero frequency: got error %v, want a validation error", err)
	}
}
