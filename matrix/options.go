// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the elimination kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves a call's effective policy.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Defaults reproduce the classic textbook kernels exactly: a pivot is
//     degenerate only when it equals zero, and the search takes the FIRST
//     non-degenerate candidate.
//   - Determinant searches columns of the pivot row; Inverse/Solve/Rank search
//     rows of the pivot column. The policy applies to whichever axis is searched.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotTolerance is the magnitude at or below which a pivot counts as zero.
	// Zero means the exact equality test.
	DefaultPivotTolerance = 0.0

	// DefaultPartialPivoting selects the max-magnitude candidate when true,
	// the first non-degenerate candidate when false.
	DefaultPartialPivoting = false

	// DefaultFiniteCheck rejects NaN/±Inf inputs before elimination when true.
	DefaultFiniteCheck = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotToleranceInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	pivotTol     float64 // >= 0; DefaultPivotTolerance
	partialPivot bool    // DefaultPartialPivoting
	finiteCheck  bool    // DefaultFiniteCheck
}

// ---------- Constructors (WithX) ----------

// WithPivotTolerance treats any candidate pivot with |x| <= tol as zero.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0.
//   - Stage 2: return a setter that writes tol into Options.
//
// Behavior highlights:
//   - tol == 0 is the exact-zero test (the default).
//   - Under Determinant a degenerate pivot row yields 0; under Inverse/Solve it yields ErrSingular.
//
// Errors:
//   - Panics with a stable message when tol is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - 1e-12 is a reasonable start for well-scaled float64 data of moderate size.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithPartialPivoting picks the candidate of largest magnitude instead of the first non-zero one.
// Ties are broken by the lowest index, so results stay deterministic.
func WithPartialPivoting() Option {
	return func(o *Options) { o.partialPivot = true }
}

// WithFirstNonZeroPivot restores the default first-candidate search.
func WithFirstNonZeroPivot() Option {
	return func(o *Options) { o.partialPivot = false }
}

// WithFiniteCheck makes the kernels reject inputs with NaN or ±Inf (ErrNaNInf).
func WithFiniteCheck() Option {
	return func(o *Options) { o.finiteCheck = true }
}

// defaultOptions returns the documented zero-configuration policy.
func defaultOptions() Options {
	return Options{
		pivotTol:     DefaultPivotTolerance,
		partialPivot: DefaultPartialPivoting,
		finiteCheck:  DefaultFiniteCheck,
	}
}

// gatherOptions applies user options over defaults in order (last writer wins).
// Nil options are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// degenerate reports whether v must be treated as a zero pivot.
// NaN is never degenerate, matching the plain v == 0 test.
func (o Options) degenerate(v float64) bool {
	if o.pivotTol == 0 {
		return v == 0
	}

	return math.Abs(v) <= o.pivotTol
}
