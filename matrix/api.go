// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication: each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

import "fmt"

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized rows×cols matrix.
// It is a thin alias of NewDense with an intention-revealing name.
//
// Note: Returns (*Dense, error) to surface ErrBadShape.
func NewZeros[E Number](rows, cols int) (*Dense[E], error) {
	return NewDense[E](rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
//
// Errors: ErrBadShape when n < 0.
func NewIdentity[E Number](n int) (*Dense[E], error) {
	if n < 0 {
		return nil, fmt.Errorf("NewIdentity(%d): %w", n, ErrBadShape)
	}

	return identity[E](n), nil
}

// identity builds I_n for a trusted n >= 0.
func identity[E Number](n int) *Dense[E] {
	id := newDenseUnchecked[E](n, n)
	for i := 0; i < n; i++ { // fixed i order
		id.data[i*n+i] = 1
	}

	return id
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Handy to preallocate staging buffers.
func ZerosLike[E Number](m *Dense[E]) (*Dense[E], error) {
	if m == nil {
		return nil, matrixErrorf("ZerosLike", ErrNilMatrix)
	}

	return newDenseUnchecked[E](m.r, m.c), nil
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n^2).
func IdentityLike[E Number](m *Dense[E]) (*Dense[E], error) {
	if m == nil {
		return nil, matrixErrorf("IdentityLike", ErrNilMatrix)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return identity[E](m.r), nil
}

// ---------- Elimination facades ----------

// Det is the function form of m.Determinant(opts...).
func Det[E Number](m *Dense[E], opts ...Option) (E, error) { return m.Determinant(opts...) }

// InverseOf is the function form of m.Inverse(opts...).
// Complexity: O(n^3).
func InverseOf[E Number](m *Dense[E], opts ...Option) (*Dense[float64], error) {
	return m.Inverse(opts...)
}

// ---------- Arithmetic aliases ----------

// Sum is an alias for Add: element-wise a + b.
func Sum[E Number](a, b *Dense[E]) (*Dense[E], error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff[E Number](a, b *Dense[E]) (*Dense[E], error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
// Complexity: O(r*n*c).
func Product[E Number](a, b *Dense[E]) (*Dense[E], error) { return Mul(a, b) }

// T is an alias for Transpose: returns mᵀ.
func T[E Number](m *Dense[E]) (*Dense[E], error) { return Transpose(m) }
