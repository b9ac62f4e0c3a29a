// SPDX-License-Identifier: MIT
// Package matrix provides elementwise and product arithmetic on Dense values:
// addition, subtraction, scalar scaling, matrix multiplication and transpose.
// All functions perform strict fail-fast validation and return fresh results;
// operands are never mutated.
//
// Notes:
//   - These are the named replacements for +, -, scalar ×, matrix ×.
//   - Loops run over the flat row-major buffers in fixed order (deterministic).

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opTranspose = "Transpose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign·b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub sharing validation, allocation and the flat loop.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shapes differ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub[E Number](a, b *Dense[E], sign E, opTag string) (*Dense[E], error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opTag, ErrNilMatrix)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newDenseUnchecked[E](a.r, a.c)
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh result.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Add[E Number](a, b *Dense[E]) (*Dense[E], error) { return addSub(a, b, 1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh result.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Sub[E Number](a, b *Dense[E]) (*Dense[E], error) { return addSub(a, b, -1, opSub) }

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Never fails for a non-nil m.
// Complexity: O(r*c).
func Scale[E Number](m *Dense[E], alpha E) (*Dense[E], error) {
	if m == nil {
		return nil, matrixErrorf(opScale, ErrNilMatrix)
	}
	res := m.Clone()
	for idx := range res.data {
		res.data[idx] *= alpha
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: validate non-nil and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j over row-major strides, skipping zero A[i,k].
//
// Behavior highlights:
//   - (m×k)·(k×n) → m×n; k == 0 yields an m×n zero matrix.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(m*k*n), Space O(m*n).
func Mul[E Number](a, b *Dense[E]) (*Dense[E], error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.r, a.c, b.c
	res := newDenseUnchecked[E](aRows, bCols)

	var (
		i, j, k                            int
		rowOffsetA, rowOffsetB, rowOffsetR int
		av                                 E
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose[E Number](m *Dense[E]) (*Dense[E], error) {
	if m == nil {
		return nil, matrixErrorf(opTranspose, ErrNilMatrix)
	}
	res := newDenseUnchecked[E](m.c, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return res, nil
}
