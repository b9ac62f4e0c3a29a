// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Keep value semantics explicit: Clone and every kernel working copy own fresh storage.
//
// AI-Hints:
//   - Row(i) is a mutable window into the buffer; RowCopy(i) detaches it.
//   - Use NewFromRows for literal data, NewDense for explicit zero-filled shapes.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Row: O(1); Clone/Equal/String: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew     = "NewDense"    // ctor tag
	ctxFromRow = "NewFromRows" // ctor tag
	ctxAt      = "At"          // method tag used in error wrappers
	ctxSet     = "Set"         // method tag used in error wrappers
	ctxRow     = "Row"         // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps the sentinel reachable via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of E.
//   - r,c hold dimensions (rows, cols); both may be zero.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// Shape is fixed at construction; only element values mutate.
// A Dense is not safe for concurrent mutation; distinct values share nothing.
type Dense[E Number] struct {
	r, c int // row and column counts (>=0)
	data []E // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Shaped       = (*Dense[float64])(nil)
	_ fmt.Stringer = (*Dense[int])(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrBadShape.
//   - Stage 2: allocate a zero-filled buffer.
//
// Behavior highlights:
//   - 0×0, 0×k and k×0 are legal (empty) matrices.
//
// Errors:
//   - ErrBadShape (negative dimension).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[E Number](rows, cols int) (*Dense[E], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNew, rows, cols, ErrBadShape)
	}

	// make() zero-fills deterministically.
	return &Dense[E]{r: rows, c: cols, data: make([]E, rows*cols)}, nil
}

// newDenseUnchecked allocates without validation; callers guarantee rows,cols >= 0.
func newDenseUnchecked[E Number](rows, cols int) *Dense[E] {
	return &Dense[E]{r: rows, c: cols, data: make([]E, rows*cols)}
}

// NewFromRows builds a matrix from nested literal data, copying every element.
// MAIN DESCRIPTION:
//   - Literal constructor: rows[i][j] becomes element (i,j).
//
// Implementation:
//   - Stage 1: the first row fixes the column count; every other row must match.
//   - Stage 2: copy rows into one flat buffer.
//
// Behavior highlights:
//   - Empty outer slice yields a 0×0 matrix; rows of length zero yield r×0.
//   - The caller's slices are never retained.
//
// Errors:
//   - ErrNotAMatrix when row lengths differ (nothing is allocated).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows[E Number](rows [][]E) (*Dense[E], error) {
	r := len(rows)
	if r == 0 {
		return newDenseUnchecked[E](0, 0), nil
	}
	c := len(rows[0])
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d elements, want %d: %w",
				ctxFromRow, i, len(rows[i]), c, ErrNotAMatrix)
		}
	}

	m := newDenseUnchecked[E](r, c)
	for i := 0; i < r; i++ {
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense[E]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense[E]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense[E]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the bare sentinel; public methods wrap with coordinates and method name.
func (m *Dense[E]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns the sentinel wrapped with coordinates.
// Complexity: O(1).
func (m *Dense[E]) At(row, col int) (E, error) {
	if m == nil {
		return 0, denseErrorf(ctxAt, row, col, ErrNilMatrix)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[E]) Set(row, col int, v E) error {
	if m == nil {
		return denseErrorf(ctxSet, row, col, ErrNilMatrix)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// Row returns row i as a mutable window over the matrix storage.
// MAIN DESCRIPTION:
//   - Writes through the returned slice change the matrix.
//
// Behavior highlights:
//   - Capacity is clipped to Cols(), so append never spills into row i+1.
//   - The window stays valid for the matrix lifetime (storage never reallocates).
//
// Errors:
//   - ErrOutOfRange when i is not in [0, Rows()).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[E]) Row(i int) ([]E, error) {
	if m == nil {
		return nil, denseErrorf(ctxRow, i, 0, ErrNilMatrix)
	}
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	lo, hi := i*m.c, (i+1)*m.c

	return m.data[lo:hi:hi], nil
}

// RowCopy returns an independent copy of row i.
func (m *Dense[E]) RowCopy(i int) ([]E, error) {
	row, err := m.Row(i)
	if err != nil {
		return nil, err
	}

	return append([]E(nil), row...), nil
}

// ToRows returns the elements as freshly allocated nested slices.
// Complexity: O(r*c).
func (m *Dense[E]) ToRows() [][]E {
	if m == nil {
		return nil
	}
	out := make([][]E, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = append([]E(nil), m.data[i*m.c:(i+1)*m.c]...)
	}

	return out
}

// Clone returns a deep copy (new buffer, same shape).
// Mutations of the clone never affect the original and vice versa.
// Clone of nil is nil.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense[E]) Clone() *Dense[E] {
	if m == nil {
		return nil
	}
	cp := make([]E, len(m.data)) // allocate same length
	copy(cp, m.data)             // deep copy

	return &Dense[E]{r: m.r, c: m.c, data: cp}
}

// Equal reports whether m and other have identical shape and identical
// elements in row/column order. Two nil matrices are equal.
// Float comparison is exact (NaN != NaN); use AllClose for tolerance.
// Complexity: O(r*c).
func (m *Dense[E]) Equal(other *Dense[E]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for idx := range m.data {
		if m.data[idx] != other.data[idx] {
			return false
		}
	}

	return true
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values (%v) into strings.Builder with standard delimiters.
//
// Behavior highlights:
//   - Not for hot paths; intended for logs and debugging.
//   - An r×0 matrix prints r empty rows; 0×c prints nothing.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense[E]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense[E]) Do(f func(i, j int, v E) bool) {
	var i, j, base int

	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place, in row-major order.
// Keep transforms pure; f must not capture and mutate m itself.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense[E]) Apply(f func(i, j int, v E) E) {
	var i, j, base int

	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}
