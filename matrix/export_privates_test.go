// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private kernels and the options snapshot.
//
// Purpose:
//   - Expose UNEXPORTED helpers to matrix_test ONLY; the file is a _test.go
//     in package matrix, so it never reaches production builds.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields
//     (tests will catch drift).

// Panic message exports to avoid "magic strings" in tests.
const PanicPivotToleranceInvalid_TestOnly = panicPivotToleranceInvalid

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot struct {
	PivotTol     float64
	PartialPivot bool
	FiniteCheck  bool
}

// GatherOptionsSnapshot_TestOnly resolves opts exactly like the kernels do.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		PivotTol:     o.pivotTol,
		PartialPivot: o.partialPivot,
		FiniteCheck:  o.finiteCheck,
	}
}

// Degenerate_TestOnly reports whether v fails the pivot test under opts.
func Degenerate_TestOnly(v float64, opts ...Option) bool {
	return gatherOptions(opts...).degenerate(v)
}

// FromFloat_TestOnly exposes the float64 → E result conversion.
func FromFloat_TestOnly[E Number](v float64) E { return fromFloat[E](v) }

// GaussJordan_TestOnly runs the raw reduction on w and acc in place.
func GaussJordan_TestOnly(w, acc *Dense[float64], opts ...Option) error {
	return gaussJordan(w, acc, gatherOptions(opts...))
}
