// SPDX-License-Identifier: MIT

// Package matrix - inversion and linear solves via Gauss-Jordan reduction.
//
// Policy:
//   - The receiver is read-only; all work happens on float64 copies W, Acc.
//   - Every row operation on W is mirrored on Acc (see lockstep).
//   - No partial result is ever returned on failure.

package matrix

import "fmt"

const (
	opInverse = "Inverse"
	opSolve   = "Solve"
)

// Inverse returns m⁻¹ as a float64 matrix, computed by Gauss-Jordan reduction.
// MAIN DESCRIPTION:
//   - W = float64(m) is reduced to the identity while Acc, initialized to I,
//     receives exactly the same row operations and thus becomes m⁻¹.
//
// Implementation:
//   - Stage 1: validate (non-nil, square); promote to W, allocate Acc = I.
//   - Stage 2: for each pivot column c: row-swap a usable pivot into place
//     (policy-driven), scale row c to make the pivot 1, eliminate column c
//     in every other row (above and below).
//   - Stage 3: return Acc.
//
// Behavior highlights:
//   - 0×0 input returns a 0×0 matrix.
//   - Default pivot search takes the first row below c with a non-zero entry.
//
// Inputs:
//   - opts: pivot policy (WithPivotTolerance, WithPartialPivoting, WithFiniteCheck).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf (only under WithFiniteCheck),
//     ErrSingular (some column has no usable pivot).
//
// Complexity:
//   - Time O(n³), Space O(n²) for W and Acc.
//
// AI-Hints:
//   - To solve A·X = B prefer Solve(A, B): same cost, no explicit inverse.
func (m *Dense[E]) Inverse(opts ...Option) (*Dense[float64], error) {
	if m == nil {
		return nil, matrixErrorf(opInverse, ErrNilMatrix)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)

	w := ToFloat64(m)
	if o.finiteCheck {
		if err := ValidateFinite(w); err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
	}
	acc := identity[float64](m.r)

	if err := gaussJordan(w, acc, o); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return acc, nil
}

// Solve returns X with A·X = B for square A (n×n) and B (n×k).
// MAIN DESCRIPTION:
//   - Gauss-Jordan on float64(A) with float64(B) as the accumulator;
//     Inverse is the special case B = I.
//
// Behavior highlights:
//   - Neither a nor b is modified.
//   - k == 0 is legal and yields an n×0 result (after the singularity check).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (A), ErrDimensionMismatch (B.Rows ≠ n),
//     ErrNaNInf (only under WithFiniteCheck), ErrSingular.
//
// Complexity:
//   - Time O(n²·(n+k)), Space O(n² + n·k).
func Solve[E Number](a, b *Dense[E], opts ...Option) (*Dense[float64], error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opSolve, ErrNilMatrix)
	}
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if b.r != a.r {
		return nil, matrixErrorf(opSolve, fmt.Errorf("rhs has %d rows, want %d: %w", b.r, a.r, ErrDimensionMismatch))
	}
	o := gatherOptions(opts...)

	w, acc := ToFloat64(a), ToFloat64(b)
	if o.finiteCheck {
		if err := ValidateFinite(w); err != nil {
			return nil, matrixErrorf(opSolve, err)
		}
		if err := ValidateFinite(acc); err != nil {
			return nil, matrixErrorf(opSolve, err)
		}
	}

	if err := gaussJordan(w, acc, o); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return acc, nil
}
