// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation panics on user-triggered error conditions.
// Panics are reserved for programmer errors in option constructors.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Shape-family sentinels wrap ErrShape, so errors.Is(err, ErrShape) matches
// any of them while errors.Is(err, ErrNonSquare) stays precise.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil receiver -> shape -> index -> NaN/Inf -> singular.

var (
	// ErrShape is the root of every dimension-related failure.
	ErrShape = errors.New("matrix: shape error")

	// ErrNotAMatrix is returned by literal construction when rows differ in length.
	ErrNotAMatrix = fmt.Errorf("%w: rows have unequal length, not a matrix", ErrShape)

	// ErrBadShape is returned when a requested shape is invalid (negative dimension),
	// or when an external representation cannot hold the given shape.
	ErrBadShape = fmt.Errorf("%w: invalid dimensions", ErrShape)

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrShape)

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrShape)

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Accessors and row/column operations return it; nothing is written first.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrSingular is returned when no usable pivot exists during inversion or solving.
	// Determinant never returns it: a missing pivot there is the value zero.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// (WithFiniteCheck inputs, AllClose tolerances).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
