// SPDX-License-Identifier: MIT

// Package matrix - shared skeleton of the elimination family.
//
// Purpose:
//   - Pivot search under the configured policy (first non-degenerate or max magnitude).
//   - The lock-step pair that mirrors every row operation on a working copy
//     and its accumulator (Gauss-Jordan inversion and solving).
//   - The Gauss-Jordan reduction loop itself.
//
// Determinism:
//   - Fixed loop orders (pivot column ascending, rows ascending); ties in
//     max-magnitude search go to the lowest index.

package matrix

import (
	"fmt"
	"math"
)

// pivotSearch returns the index k in [from, to) chosen by the policy, or -1
// when every candidate at(k) is degenerate.
func (o Options) pivotSearch(from, to int, at func(k int) float64) int {
	best, bestAbs := -1, 0.0
	for k := from; k < to; k++ {
		v := at(k)
		if o.degenerate(v) {
			continue
		}
		if !o.partialPivot {
			return k // first non-degenerate wins
		}
		if a := math.Abs(v); best < 0 || a > bestAbs {
			best, bestAbs = k, a
		}
	}

	return best
}

// choosePivot resolves the pivot index for position c along a search axis of length n.
// With first-non-zero search a healthy current pivot is kept (no search at all);
// with partial pivoting the current position competes with the rest.
func (o Options) choosePivot(c, n int, at func(k int) float64) int {
	if o.partialPivot {
		return o.pivotSearch(c, n, at)
	}
	if !o.degenerate(at(c)) {
		return c
	}

	return o.pivotSearch(c+1, n, at)
}

// lockstep applies every row operation to w and acc together.
// The pair is the only way gaussJordan touches either matrix, so the two
// can never drift apart. Indices are trusted (validated by the loop bounds).
type lockstep struct {
	w   *Dense[float64] // working copy, reduced towards identity
	acc *Dense[float64] // accumulator, becomes the result
}

func (p lockstep) swapRows(i, j int) {
	p.w.swapRows(i, j)
	p.acc.swapRows(i, j)
}

func (p lockstep) scaleRow(i int, n float64) {
	p.w.scaleRow(i, n)
	p.acc.scaleRow(i, n)
}

func (p lockstep) combineRows(i, j int, n float64) {
	p.w.combineRows(i, j, n)
	p.acc.combineRows(i, j, n)
}

// gaussJordan reduces the square w to the identity, mirroring each row
// operation onto acc (acc.Rows() == w.Rows(); acc may have any column count).
// MAIN DESCRIPTION:
//   - Full reduction: entries above AND below each pivot are eliminated.
//
// Implementation:
//   - Stage 1: pick the pivot row for column c (policy-driven); swap it into place.
//   - Stage 2: scale row c by 1/w[c][c] so the pivot becomes 1.
//   - Stage 3: for every r ≠ c, row r += (−w[r][c])·row c.
//
// Errors:
//   - ErrSingular when a column has no usable pivot; w and acc are then
//     partially reduced and must be discarded by the caller.
//
// Complexity:
//   - Time O(n²·(n+k)), Space O(1) beyond the operands.
func gaussJordan(w, acc *Dense[float64], o Options) error {
	n := w.r
	pair := lockstep{w: w, acc: acc}

	var c, r, p int
	var f float64
	for c = 0; c < n; c++ {
		col := c
		p = o.choosePivot(c, n, func(k int) float64 { return w.data[k*n+col] })
		if p < 0 {
			return fmt.Errorf("no pivot in column %d: %w", c, ErrSingular)
		}
		if p != c {
			pair.swapRows(c, p)
		}

		pair.scaleRow(c, 1/w.data[c*n+c])

		for r = 0; r < n; r++ {
			if r == c {
				continue
			}
			f = -w.data[r*n+c]
			if f == 0 {
				continue // nothing to eliminate
			}
			pair.combineRows(r, c, f)
		}
	}

	return nil
}
