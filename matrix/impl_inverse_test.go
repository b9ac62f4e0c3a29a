package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// ---------- Inverse ----------

func TestInverse_Known2x2(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   [][]int
		want [][]float64
	}{
		{"scaled identity", [][]int{{2, 0}, {0, 2}}, [][]float64{{0.5, 0}, {0, 0.5}}},
		{"swap permutation", [][]int{{0, 1}, {1, 0}}, [][]float64{{0, 1}, {1, 0}}},
		{"identity", [][]int{{1, 0}, {0, 1}}, [][]float64{{1, 0}, {0, 1}}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			inv, err := MustFromRows(t, tc.in).Inverse()
			require.NoError(t, err)
			require.Equal(t, tc.want, inv.ToRows())
		})
	}
}

// Known 3×3 matrix with det=9: the inverse is adj(A)/9, and A·A⁻¹ ≈ I ≈ A⁻¹·A.
func TestInverse_Known3x3_Adjugate(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]int{{4, 7, 2}, {3, 6, 1}, {2, 5, 3}})
	inv, err := a.Inverse()
	require.NoError(t, err)

	want := MustFromRows(t, [][]float64{
		{13.0 / 9.0, -11.0 / 9.0, -5.0 / 9.0},
		{-7.0 / 9.0, 8.0 / 9.0, 2.0 / 9.0},
		{3.0 / 9.0, -6.0 / 9.0, 3.0 / 9.0},
	})
	RequireAllClose(t, want, inv, 1e-12)

	af := matrix.ToFloat64(a)
	RequireAllClose(t, MustIdentity(t, 3), MustMul(t, af, inv), 1e-12)
	RequireAllClose(t, MustIdentity(t, 3), MustMul(t, inv, af), 1e-12)
}

// Property: A·A⁻¹ ≈ I and (A⁻¹)⁻¹ ≈ A on reproducible well-conditioned inputs.
func TestInverse_Properties(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 7; n++ {
		for seed := int64(0); seed < 3; seed++ {
			a := RandDiagDominant(t, n, seed+int64(10*n))
			orig := a.Clone()

			inv, err := a.Inverse()
			require.NoError(t, err, "n=%d seed=%d", n, seed)
			require.True(t, a.Equal(orig), "Inverse mutated its receiver")

			RequireAllClose(t, MustIdentity(t, n), MustMul(t, a, inv), closeTol)

			back, err := inv.Inverse()
			require.NoError(t, err)
			RequireAllClose(t, a, back, closeTol)
		}
	}
}

// A leading zero pivot forces a row swap that must be mirrored on the accumulator.
func TestInverse_NeedsRowSwaps(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{
		{0, 2, 1},
		{0, 0, 3},
		{4, 1, 0},
	})
	inv, err := a.Inverse()
	require.NoError(t, err)
	RequireAllClose(t, MustIdentity(t, 3), MustMul(t, a, inv), closeTol)
	RequireAllClose(t, MustIdentity(t, 3), MustMul(t, inv, a), closeTol)
}

func TestInverse_Errors(t *testing.T) {
	t.Parallel()

	_, err := MustDense[float64](t, 3, 4).Inverse()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.ErrorIs(t, err, matrix.ErrShape)

	sing := MustFromRows(t, [][]int{{1, 2}, {2, 4}})
	inv, err := sing.Inverse()
	require.ErrorIs(t, err, matrix.ErrSingular)
	require.Nil(t, inv, "no partial inverse on failure")

	zeroRow := MustFromRows(t, [][]float64{{1, 2, 3}, {0, 0, 0}, {4, 5, 6}})
	_, err = zeroRow.Inverse()
	require.ErrorIs(t, err, matrix.ErrSingular)

	// Two equal rows.
	_, err = matrix.InverseOf(MustFromRows(t, [][]float64{{1, 2, 3}, {1, 2, 3}, {0, 1, 4}}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	var nilM *matrix.Dense[int]
	_, err = nilM.Inverse()
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestInverse_Empty(t *testing.T) {
	t.Parallel()

	inv, err := MustDense[int](t, 0, 0).Inverse()
	require.NoError(t, err)
	require.Equal(t, 0, inv.Rows())
	require.Equal(t, 0, inv.Cols())
}

func TestInverse_PivotPolicy(t *testing.T) {
	t.Parallel()

	a := RandDiagDominant(t, 5, 99)
	want, err := a.Inverse()
	require.NoError(t, err)
	got, err := a.Inverse(matrix.WithPartialPivoting())
	require.NoError(t, err)
	RequireAllClose(t, want, got, closeTol)

	// A nearly singular matrix passes the exact test but not a tolerance.
	near := MustFromRows(t, [][]float64{{1, 1}, {1, 1 + 1e-14}})
	_, err = near.Inverse()
	require.NoError(t, err)
	_, err = near.Inverse(matrix.WithPivotTolerance(1e-12))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = MustFromRows(t, [][]float64{{math.Inf(1), 0}, {0, 1}}).Inverse(matrix.WithFiniteCheck())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// White-box: after a successful reduction the working copy is the identity,
// which is exactly what keeps the accumulator equal to the inverse.
func TestGaussJordan_WorkingCopyBecomesIdentity(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{0, 2, 1}, {0, 0, 3}, {4, 1, 0}})
	w := a.Clone()
	acc := MustIdentity(t, 3)

	require.NoError(t, matrix.GaussJordan_TestOnly(w, acc))
	RequireAllClose(t, MustIdentity(t, 3), w, closeTol)
	RequireAllClose(t, MustIdentity(t, 3), MustMul(t, a, acc), closeTol)
}

// ---------- Solve ----------

func TestSolve(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]int{{2, 1}, {1, 3}})
	b := MustFromRows(t, [][]int{{3}, {5}})
	x, err := matrix.Solve(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, x.Rows())
	require.Equal(t, 1, x.Cols())
	require.InDelta(t, 0.8, MustAt(t, x, 0, 0), closeTol)
	require.InDelta(t, 1.4, MustAt(t, x, 1, 0), closeTol)

	// Operands are untouched.
	require.Equal(t, [][]int{{2, 1}, {1, 3}}, a.ToRows())
	require.Equal(t, [][]int{{3}, {5}}, b.ToRows())
}

// Solving against the identity runs the very same operations as Inverse.
func TestSolve_IdentityMatchesInverse(t *testing.T) {
	t.Parallel()

	a := RandDiagDominant(t, 6, 5)
	inv, err := a.Inverse()
	require.NoError(t, err)
	x, err := matrix.Solve(a, MustIdentity(t, 6))
	require.NoError(t, err)
	require.True(t, inv.Equal(x))
}

func TestSolve_MultipleRHS(t *testing.T) {
	t.Parallel()

	a := RandDiagDominant(t, 4, 1)
	b := RandDiagDominant(t, 4, 2)
	x, err := matrix.Solve(a, b)
	require.NoError(t, err)
	RequireAllClose(t, b, MustMul(t, a, x), closeTol)

	empty, err := matrix.Solve(a, MustDense[float64](t, 4, 0))
	require.NoError(t, err)
	require.Equal(t, 4, empty.Rows())
	require.Equal(t, 0, empty.Cols())
}

func TestSolve_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.Solve(MustDense[int](t, 2, 3), MustDense[int](t, 2, 1))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Solve(MustIdentity(t, 2), MustDense[float64](t, 3, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Solve(MustFromRows(t, [][]int{{1, 2}, {2, 4}}), MustDense[int](t, 2, 1))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Solve(nil, MustDense[int](t, 2, 1))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	rhs := MustFromRows(t, [][]float64{{math.NaN()}, {1}})
	_, err = matrix.Solve(MustIdentity(t, 2), rhs, matrix.WithFiniteCheck())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
