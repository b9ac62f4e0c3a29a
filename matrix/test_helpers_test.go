// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed unless a test targets NaN/Inf.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// closeTol is the default absolute tolerance for float comparisons in kernel tests.
const closeTol = 1e-9

// MustFromRows BUILDS a matrix from literal rows or fails the test.
// Implementation:
//   - Stage 1: call matrix.NewFromRows(rows).
//   - Stage 2: require.NoError to abort the test early.
//
// Behavior highlights:
//   - Concise boilerplate reduction; the literal reads like the math.
func MustFromRows[E matrix.Number](t testing.TB, rows [][]E) *matrix.Dense[E] {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err, "NewFromRows(%v)", rows)

	return m
}

// MustDense ALLOCATES an r×c zero matrix or fails the test.
func MustDense[E matrix.Number](t testing.TB, r, c int) *matrix.Dense[E] {
	t.Helper()
	m, err := matrix.NewDense[E](r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustIdentity RETURNS I_n as float64 or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Dense[float64] {
	t.Helper()
	id, err := matrix.NewIdentity[float64](n)
	require.NoError(t, err, "NewIdentity(%d)", n)

	return id
}

// MustAt READS m[i,j] or fails the test.
func MustAt[E matrix.Number](t testing.TB, m *matrix.Dense[E], i, j int) E {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// MustMul MULTIPLIES a × b or fails the test.
func MustMul[E matrix.Number](t testing.TB, a, b *matrix.Dense[E]) *matrix.Dense[E] {
	t.Helper()
	p, err := matrix.Mul(a, b)
	require.NoError(t, err, "Mul")

	return p
}

// RequireAllClose ASSERTS |got-want| <= tol elementwise with identical shapes.
// On failure it prints both matrices, which is usually all one needs.
func RequireAllClose(t testing.TB, want, got *matrix.Dense[float64], tol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, tol)
	require.NoError(t, err)
	require.True(t, ok, "want:\n%s\ngot:\n%s", want, got)
}

// RandDiagDominant RETURNS a reproducible n×n float64 matrix with entries in
// [-1,1) off the diagonal and n+1 added to the diagonal, so it is invertible
// and well-conditioned for any seed.
func RandDiagDominant(t testing.TB, n int, seed int64) *matrix.Dense[float64] {
	t.Helper()
	m := MustDense[float64](t, n, n)
	rng := rand.New(rand.NewSource(seed))
	m.Apply(func(i, j int, _ float64) float64 {
		v := rng.Float64()*2 - 1
		if i == j {
			v += float64(n + 1)
		}
		return v
	})

	return m
}

// RandInts RETURNS a reproducible r×c int matrix with entries in [-lim, lim].
func RandInts(t testing.TB, r, c, lim int, seed int64) *matrix.Dense[int] {
	t.Helper()
	m := MustDense[int](t, r, c)
	rng := rand.New(rand.NewSource(seed))
	m.Apply(func(_, _ int, _ int) int { return rng.Intn(2*lim+1) - lim })

	return m
}
