// SPDX-License-Identifier: MIT

// Package matrix - elementary row/column operations (in-place mutators).
//
// Purpose:
//   - Provide the three elementary operations on rows (swap, scale, combine)
//     and their exact column duals; Determinant and Inverse are built on them.
//
// Contract (every method):
//   - Validate the receiver and all indices FIRST; on error nothing is written.
//   - Mutate only the receiver's storage; no allocation.
//
// Notes:
//   - ScaleRow(i, 0) is legal and produces a zero row (caller responsibility).
//   - CombineRows(i, i, n) is legal: row i is effectively scaled by (1+n).

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opSwapRows    = "SwapRows"
	opScaleRow    = "ScaleRow"
	opCombineRows = "CombineRows"
	opSwapCols    = "SwapCols"
	opScaleCol    = "ScaleCol"
	opCombineCols = "CombineCols"
)

// rowColErrorf tags err with the operation and its index arguments.
func rowColErrorf(op string, i, j int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", op, i, j, err)
}

// SwapRows exchanges rows i and j.
// Swapping a row with itself is a no-op.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (i or j ∉ [0, Rows())).
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense[E]) SwapRows(i, j int) error {
	if m == nil {
		return rowColErrorf(opSwapRows, i, j, ErrNilMatrix)
	}
	if err := ValidateRowIndex(m, i, j); err != nil {
		return rowColErrorf(opSwapRows, i, j, err)
	}
	if i == j {
		return nil
	}
	m.swapRows(i, j)

	return nil
}

// ScaleRow multiplies every element of row i by n.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense[E]) ScaleRow(i int, n E) error {
	if m == nil {
		return rowColErrorf(opScaleRow, i, i, ErrNilMatrix)
	}
	if err := ValidateRowIndex(m, i); err != nil {
		return rowColErrorf(opScaleRow, i, i, err)
	}
	m.scaleRow(i, n)

	return nil
}

// CombineRows performs row i ← row i + n·row j, elementwise.
// MAIN DESCRIPTION:
//   - The "transform" of Gaussian elimination: adds a multiple of one row to another.
//
// Behavior highlights:
//   - i == j is allowed; every element x of row i becomes x + n·x.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (i or j ∉ [0, Rows())).
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense[E]) CombineRows(i, j int, n E) error {
	if m == nil {
		return rowColErrorf(opCombineRows, i, j, ErrNilMatrix)
	}
	if err := ValidateRowIndex(m, i, j); err != nil {
		return rowColErrorf(opCombineRows, i, j, err)
	}
	m.combineRows(i, j, n)

	return nil
}

// SwapCols exchanges columns i and j across all rows.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (i or j ∉ [0, Cols())).
//
// Complexity:
//   - Time O(r), Space O(1).
func (m *Dense[E]) SwapCols(i, j int) error {
	if m == nil {
		return rowColErrorf(opSwapCols, i, j, ErrNilMatrix)
	}
	if err := ValidateColIndex(m, i, j); err != nil {
		return rowColErrorf(opSwapCols, i, j, err)
	}
	if i == j {
		return nil
	}
	m.swapCols(i, j)

	return nil
}

// ScaleCol multiplies every element of column i by n.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
func (m *Dense[E]) ScaleCol(i int, n E) error {
	if m == nil {
		return rowColErrorf(opScaleCol, i, i, ErrNilMatrix)
	}
	if err := ValidateColIndex(m, i); err != nil {
		return rowColErrorf(opScaleCol, i, i, err)
	}
	for base := i; base < len(m.data); base += m.c {
		m.data[base] *= n
	}

	return nil
}

// CombineCols performs column i ← column i + n·column j, elementwise.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
func (m *Dense[E]) CombineCols(i, j int, n E) error {
	if m == nil {
		return rowColErrorf(opCombineCols, i, j, ErrNilMatrix)
	}
	if err := ValidateColIndex(m, i, j); err != nil {
		return rowColErrorf(opCombineCols, i, j, err)
	}
	for base := 0; base < len(m.data); base += m.c {
		m.data[base+i] += n * m.data[base+j]
	}

	return nil
}

// ---------- unchecked kernels (indices already validated) ----------

func (m *Dense[E]) swapRows(i, j int) {
	ri := m.data[i*m.c : (i+1)*m.c]
	rj := m.data[j*m.c : (j+1)*m.c]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}

func (m *Dense[E]) scaleRow(i int, n E) {
	ri := m.data[i*m.c : (i+1)*m.c]
	for k := range ri {
		ri[k] *= n
	}
}

func (m *Dense[E]) combineRows(i, j int, n E) {
	ri := m.data[i*m.c : (i+1)*m.c]
	rj := m.data[j*m.c : (j+1)*m.c]
	for k := range ri {
		ri[k] += n * rj[k]
	}
}

func (m *Dense[E]) swapCols(i, j int) {
	for base := 0; base < len(m.data); base += m.c {
		m.data[base+i], m.data[base+j] = m.data[base+j], m.data[base+i]
	}
}
