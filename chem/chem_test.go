// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package chem_test

import (
	"math"
	"testing"

	"github.com/js-arias/sciops/calcerr"
	"github.com/js-arias/sciops/chem"
)

func TestMolarity(t *testing.T) {
	m, err := chem.Molarity(0.5, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != 0.25 {
		t.Errorf("got %g, want 0.25", m)
	}
	if _, err := chem.Molarity(1, 0); !calcerr.Is(err, calcerr.Validation) {
		t.Errorf("zero volume: got error %v, want a validation error", err)
	}
}

func TestDilution(t *testing.T) {
	v2, err := chem.DilutionFinalVolume(2, 10, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v2 != 40 {
		t.Errorf("final volume: got %g, want 40", v2)
	}

	if _, err := chem.DilutionFinalVolume(1, 10, 2); !calcerr.Is(err, calcerr.Validation) {
		t.Errorf("concentrate: got error %v, want a validation error", err)
	}
	if _, err := chem.DilutionFinalVolume(1, -10, 0.5); !calcerr.Is(err, calcerr.Validation) {
		t.Errorf("negative volume: got error %v, want a validation error", err)
	}
}

func TestStockDilution(t *testing.T) {
	stock, solvent, err := chem.StockDilution(10, 1, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stock != 10 || solvent != 90 {
		t.Errorf("got stock %g, solvent %g, want 10 and 90", stock, solvent)
	}
	if _, _, err := chem.StockDilution(1, 1, 100); !calcerr.Is(err, calcerr.Validation) {
		t.Errorf("same concentration: got error %v, want a validation error", err)
	}
}

func TestPercentError(t *testing.T) {
	e, err := chem.PercentError(9.5, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(e+5) > 1e-12 {
		t.Errorf("got %g, want -5", e)
	}
	if _, err := chem.PercentError(1, 0); !calcerr.Is(err, calcerr.Validation) {
		t.Errorf("zero true value: got error %v, want a validation error", err)
	}
}
