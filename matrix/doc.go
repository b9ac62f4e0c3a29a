// Package matrix offers a generic dense matrix value type and the Gaussian
// elimination family built on it.
//
// The matrix package provides:
//
//   - Dense[E], a row-major rows×cols grid over any signed integer or float
//     element type, with bounds-checked access and deep-copy semantics.
//   - Elementary row/column operations (SwapRows, ScaleRow, CombineRows and
//     the column duals) that mutate a matrix in place.
//   - Determinant by triangularization with column pivoting, Inverse and
//     Solve by Gauss-Jordan reduction, and Rank by row-echelon elimination.
//     All of them work on float64 copies and never modify their input.
//   - Named arithmetic (Add, Sub, Scale, Mul, Transpose) and Convert between
//     element types.
//
// Pivoting defaults to the exact-zero test with a first-non-zero search;
// WithPivotTolerance and WithPartialPivoting change that per call.
//
// Errors are sentinels (ErrShape and its family, ErrOutOfRange, ErrSingular,
// ErrNilMatrix, ErrNaNInf) matched with errors.Is.
//
// A Dense is not synchronized: distinct values may be used from different
// goroutines freely, a single value must not be mutated concurrently.
package matrix
