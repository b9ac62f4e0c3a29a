// Package lvmatrix is a small dense-matrix toolkit for Go generics: exact
// row and column operations, determinants and inverses, without pulling in
// a full linear-algebra stack.
//
// 🚀 What is lvmatrix?
//
//	A pure-Go library built around one value type, matrix.Dense[E]:
//		• Storage: rectangular, row-major, bounds-checked access
//		• Row/column ops: swap, scale, combine (in place)
//		• Elimination: Determinant, Inverse, Solve, Rank
//		• Arithmetic: Add, Sub, Scale, Mul, Transpose
//		• Interop: two-way adapters to gonum/mat
//
// ✨ Why choose lvmatrix?
//
//   - Beginner-friendly – the API reads like the textbook algorithm
//   - Predictable – default pivoting is the classic exact-zero search;
//     tolerance and partial pivoting are one option away
//   - Typed errors – every failure matches a sentinel through errors.Is
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/     : Dense[E], row/column ops, elimination kernels, arithmetic
//	converters/ : matrix.Dense ↔ gonum mat.Dense
//
// Quick example:
//
//	m, _ := matrix.NewFromRows([][]int{{0, 1}, {1, 0}})
//	det, _ := m.Determinant() // -1
//	inv, _ := m.Inverse()     // [[0 1] [1 0]]
//
// Runnable scenarios live in examples/.
//
//	go get github.com/katalvlaran/lvmatrix
package lvmatrix
