// SPDX-License-Identifier: MIT

package matrix

const opRank = "Rank"

// Rank returns the number of linearly independent rows of m.
// Row-echelon elimination on a float64 copy: for each column, a usable pivot
// (policy-driven row search) is swapped up and the entries below are cleared.
// Columns without a usable pivot are skipped.
//
// Any shape is accepted; empty matrices have rank 0.
// Errors: ErrNilMatrix, ErrNaNInf (only under WithFiniteCheck).
// Complexity: O(r·c·min(r,c)).
func (m *Dense[E]) Rank(opts ...Option) (int, error) {
	if m == nil {
		return 0, matrixErrorf(opRank, ErrNilMatrix)
	}
	o := gatherOptions(opts...)

	w := ToFloat64(m)
	if o.finiteCheck {
		if err := ValidateFinite(w); err != nil {
			return 0, matrixErrorf(opRank, err)
		}
	}

	rows, cols := w.r, w.c
	rank := 0
	for c := 0; c < cols && rank < rows; c++ {
		col := c
		p := o.choosePivot(rank, rows, func(k int) float64 { return w.data[k*cols+col] })
		if p < 0 {
			continue
		}
		if p != rank {
			w.swapRows(rank, p)
		}
		pivot := w.data[rank*cols+c]
		for r := rank + 1; r < rows; r++ {
			if f := -w.data[r*cols+c] / pivot; f != 0 {
				w.combineRows(r, rank, f)
			}
		}
		rank++
	}

	return rank, nil
}
