// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package chem implements common calculations
// of a chemistry lab:
// molarity, dilutions,
// and measurement errors.
package chem

import "github.com/js-arias/sciops/calcerr"

// Molarity returns the concentration (in mol/L)
// of n moles of solute in a volume (in L).
func Molarity(n, volume float64) (float64, error) {
	if volume <= 0 {
		return 0, calcerr.Validationf("volume must be positive, got %g", volume)
	}
	return n / volume, nil
}

// DilutionFinalVolume returns the final volume
// of a dilution of a volume v1 of a solution
// with concentration c1
// to reach the concentration c2
// (C1·V1 = C2·V2).
func DilutionFinalVolume(c1, v1, c2 float64) (float64, error) {
	if c1 <= 0 || v1 <= 0 || c2 <= 0 {
		return 0, calcerr.Validationf("concentrations and volume must be positive")
	}
	if c2 >= c1 {
		return 0, calcerr.Validationf("target concentration %g must be lower than the stock concentration %g", c2, c1)
	}
	return c1 * v1 / c2, nil
}

// StockDilution returns the volume of a stock solution,
// and the volume of solvent,
// required to prepare a volume vFinal
// with concentration cFinal.
func StockDilution(cStock, cFinal, vFinal float64) (stock, solvent float64, err error) {
	if cStock <= 0 || cFinal <= 0 || vFinal <= 0 {
		return 0, 0, calcerr.Validationf("concentrations and volume must be positive")
	}
	if cFinal >= cStock {
		return 0, 0, calcerr.Validationf("target concentration %g must be lower than the stock concentration %g", cFinal, cStock)
	}
	stock = cFinal * vFinal / cStock
	return stock, vFinal - stock, nil
}

// PercentError returns the signed percent error
// of a measured value.
func PercentError(measured, trueValue float64) (float64, error) {
	if trueValue == 0 {
		return 0, calcerr.Validationf("true value cannot be zero")
	}
	return (measured - trueValue) / trueValue * 100, nil
}
