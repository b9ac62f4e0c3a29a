// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/index checks here.
//  - Wrap sentinels with the validator tag so call sites see where a check failed.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Validators take Shaped, so one set serves every element type.
//  - Validators assume a non-nil argument; kernels guard nil first.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSameShape ensures a and b have equal dimensions.
//
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Shaped) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Errors: ErrNonSquare.
// Complexity: O(1).
// AI-Hints: Use before Determinant/Inverse/Solve.
func ValidateSquare(m Shaped) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare))
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows for the product a × b.
//
// Errors: ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Shaped) error {
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("%dx%d × %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateRowIndex ensures every index lies in [0, Rows()).
//
// Errors: ErrOutOfRange naming the first offending index.
// Complexity: O(len(idx)).
func ValidateRowIndex(m Shaped, idx ...int) error {
	for _, i := range idx {
		if i < 0 || i >= m.Rows() {
			return validatorErrorf("ValidateRowIndex", fmt.Errorf("row %d of %d: %w", i, m.Rows(), ErrOutOfRange))
		}
	}

	return nil
}

// ValidateColIndex ensures every index lies in [0, Cols()).
//
// Errors: ErrOutOfRange naming the first offending index.
// Complexity: O(len(idx)).
func ValidateColIndex(m Shaped, idx ...int) error {
	for _, j := range idx {
		if j < 0 || j >= m.Cols() {
			return validatorErrorf("ValidateColIndex", fmt.Errorf("column %d of %d: %w", j, m.Cols(), ErrOutOfRange))
		}
	}

	return nil
}

// ValidateFinite scans a float64 matrix for NaN/±Inf.
//
// Errors: ErrNaNInf with the coordinates of the first offender (row-major scan).
// Complexity: O(r*c).
func ValidateFinite(m *Dense[float64]) error {
	for idx, v := range m.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf("ValidateFinite", denseErrorf(ctxAt, idx/m.c, idx%m.c, ErrNaNInf))
		}
	}

	return nil
}
