// SPDX-License-Identifier: MIT

// Package matrix: element constraints and the shape-only interface used by validators.
// This file intentionally contains ONLY type declarations; storage lives in
// dense.go, errors and options in their dedicated files.
package matrix

// Integer is the set of signed integer element kinds.
// Unsigned kinds are excluded: Determinant flips signs on pivot swaps.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Float is the set of floating-point element kinds.
type Float interface {
	~float32 | ~float64
}

// Number is the element capability set of Dense: addable, multipliable,
// divisible, comparable to zero and convertible to/from float64.
type Number interface {
	Integer | Float
}

// Shaped is anything that reports a two-dimensional shape.
// Validators consume it so they stay independent of the element type.
//
// Complexity: both methods are expected O(1).
type Shaped interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int
}

// isIntegral reports whether E truncates fractions on conversion.
func isIntegral[E Number]() bool {
	half := 0.5

	return E(half) == 0
}
