// SPDX-License-Identifier: MIT

package converters

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmatrix/matrix"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum copies m into a new row-major *mat.Dense.
// MAIN DESCRIPTION:
//   - Every element is promoted to float64; the shape is preserved.
//
// Implementation:
//   - Stage 1: reject nil and zero-sized inputs (gonum panics on them).
//   - Stage 2: promote with matrix.ToFloat64 and hand the rows to mat.NewDense.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrBadShape (0 rows or 0 columns).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ToGonum[E matrix.Number](m *matrix.Dense[E]) (*mat.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", opToGonum, matrix.ErrNilMatrix)
	}
	r, c := m.Shape()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("%s: %dx%d: %w", opToGonum, r, c, matrix.ErrBadShape)
	}

	f := matrix.ToFloat64(m)
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		row, err := f.Row(i)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opToGonum, err)
		}
		data = append(data, row...)
	}

	return mat.NewDense(r, c, data), nil
}

// FromGonum copies any gonum Matrix (dense, transposed view, symmetric...)
// into a new matrix.Dense[float64] through Dims/At.
// Errors: matrix.ErrNilMatrix.
// Complexity: O(r*c).
func FromGonum(m mat.Matrix) (*matrix.Dense[float64], error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", opFromGonum, matrix.ErrNilMatrix)
	}
	r, c := m.Dims()
	out, err := matrix.NewDense[float64](r, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFromGonum, err)
	}

	var row []float64
	for i := 0; i < r; i++ {
		if row, err = out.Row(i); err != nil {
			return nil, fmt.Errorf("%s: %w", opFromGonum, err)
		}
		for j := range row {
			row[j] = m.At(i, j)
		}
	}

	return out, nil
}
