// SPDX-License-Identifier: MIT

// Package matrix: element-type conversion between Dense instantiations.
package matrix

import "math"

// Convert returns a new matrix with every element statically converted From → To.
// MAIN DESCRIPTION:
//   - Elementwise To(v), same shape, fresh storage.
//
// Behavior highlights:
//   - No error path: float → integer truncates toward zero, and out-of-range
//     values follow Go conversion rules (implementation-defined). Caller responsibility.
//   - Convert(nil) is nil.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Convert[From, To Number](m *Dense[From]) *Dense[To] {
	if m == nil {
		return nil
	}
	out := newDenseUnchecked[To](m.r, m.c)
	for idx, v := range m.data {
		out.data[idx] = To(v)
	}

	return out
}

// ToFloat64 is Convert[E, float64]: the promotion step every elimination kernel runs first.
func ToFloat64[E Number](m *Dense[E]) *Dense[float64] {
	return Convert[E, float64](m)
}

// fromFloat converts a float64 result back to E.
// Integer kinds round to nearest, so an exact integer value that picked up
// rounding noise during elimination (2.9999999999) comes back as 3.
func fromFloat[E Number](v float64) E {
	if isIntegral[E]() {
		return E(math.Round(v))
	}

	return E(v)
}
