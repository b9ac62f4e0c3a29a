// SPDX-License-Identifier: MIT

// Package matrix - determinant via triangularization.

package matrix

const opDeterminant = "Determinant"

// Determinant returns det(m) computed by Gaussian triangularization of a
// float64 working copy; m itself is never modified.
// MAIN DESCRIPTION:
//   - Column pivoting: when the pivot (c,c) is degenerate, a later column
//     with a usable entry in row c is swapped into position c and the sign flips.
//
// Implementation:
//   - Stage 1: validate (non-nil, square); promote to float64 (elimination divides).
//   - Stage 2: for c = 0..n-2: pick the pivot column, swap if needed,
//     then row-combine every r > c with factor −w[r][c]/w[c][c].
//   - Stage 3: result = sign × Π w[i][i], converted back to E.
//
// Behavior highlights:
//   - Total function on square input: a column with no usable pivot means the
//     matrix is singular and the result is 0 (not an error).
//   - 0×0 → 1 (empty product); 1×1 → its sole element.
//   - Integer E rounds the float64 result to nearest; float E converts directly.
//
// Inputs:
//   - opts: pivot policy (WithPivotTolerance, WithPartialPivoting, WithFiniteCheck).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf (only under WithFiniteCheck).
//
// Complexity:
//   - Time O(n³), Space O(n²) for the working copy.
//
// Notes:
//   - Default pivot test is exact equality with zero; results for
//     ill-conditioned inputs inherit float64 rounding.
func (m *Dense[E]) Determinant(opts ...Option) (E, error) {
	if m == nil {
		return 0, matrixErrorf(opDeterminant, ErrNilMatrix)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	o := gatherOptions(opts...)

	w := ToFloat64(m) // private working copy
	if o.finiteCheck {
		if err := ValidateFinite(w); err != nil {
			return 0, matrixErrorf(opDeterminant, err)
		}
	}

	return fromFloat[E](determinant(w, o)), nil
}

// determinant triangularizes w in place and returns its determinant.
func determinant(w *Dense[float64], o Options) float64 {
	n := w.r
	sign := 1.0

	var c, r, p int
	var pivot float64
	for c = 0; c < n-1; c++ {
		row := c * n
		p = o.choosePivot(c, n, func(k int) float64 { return w.data[row+k] })
		if p < 0 {
			return 0 // singular: no usable pivot in row c
		}
		if p != c {
			w.swapCols(c, p)
			sign = -sign
		}

		pivot = w.data[row+c]
		for r = c + 1; r < n; r++ {
			w.combineRows(r, c, -w.data[r*n+c]/pivot)
		}
	}

	det := sign
	for c = 0; c < n; c++ {
		d := w.data[c*n+c]
		if o.degenerate(d) {
			return 0
		}
		det *= d
	}

	return det
}
