// SPDX-License-Identifier: MIT
// Package matrix - tolerant elementwise comparison.
//
// Purpose:
//   - A single tolerance-aware comparison for float results of the elimination
//     kernels (A·A⁻¹ ≈ I), where exact Equal is the wrong tool.

package matrix

import "math"

const opAllClose = "AllClose"

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Elements are compared as float64. NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//   - NaN/Inf tolerances are rejected with ErrNaNInf.
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests in unit tests.
func AllClose[E Number](a, b *Dense[E], rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf) // invalid tolerance
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if a == nil || b == nil {
		return false, matrixErrorf(opAllClose, ErrNilMatrix)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var av, bv float64
	for idx := range a.data {
		av, bv = float64(a.data[idx]), float64(b.data[idx])
		if av == bv {
			continue // covers equal infinities
		}
		// NaN fails this comparison and therefore reports "not close".
		if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}
