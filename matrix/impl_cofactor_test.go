// SPDX-License-Identifier: MIT
// Package matrix_test - cofactor engine tests: submatrix extraction,
// recursive determinant, minors, cofactor sign table, cofactor matrix
// (sequential vs worker pool) and adjugate.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/cofactor/matrix"
	"github.com/stretchr/testify/require"
)

// ---------- Submatrix ----------

func TestSubmatrix_OrderPreserved(t *testing.T) {
	t.Parallel()

	A := MustRows(t, [][]int{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}})
	S, err := matrix.Submatrix[int](A, 1, 2)
	require.NoError(t, err)
	CompareExact(t, [][]int{{1, 2, 4}, {9, 10, 12}}, S)

	S2, err := matrix.Submatrix[int](hide[int]{A}, 1, 2)
	require.NoError(t, err)
	require.Equal(t, S.RawCopy(), S2.RawCopy())

	// source untouched
	CompareExact(t, [][]int{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}}, A)
}

func TestSubmatrix_Corners(t *testing.T) {
	t.Parallel()

	A := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	for _, tc := range []struct {
		row, col int
		want     float64
	}{{0, 0, 4}, {0, 1, 3}, {1, 0, 2}, {1, 1, 1}} {
		S, err := matrix.Submatrix[float64](A, tc.row, tc.col)
		require.NoError(t, err)
		CompareExact(t, [][]float64{{tc.want}}, S)
	}

	one := MustRows(t, [][]float64{{7}})
	S, err := matrix.Submatrix[float64](one, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, S.Rows())
	require.Equal(t, 0, S.Cols())
}

func TestSubmatrix_Errors(t *testing.T) {
	t.Parallel()

	A := MustDense[int](t, 2, 3)
	_, err := matrix.Submatrix[int](A, 2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.Submatrix[int](A, 0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.Submatrix[int](MustDense[int](t, 0, 3), 0, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.Submatrix[int](nil, 0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ---------- Determinant ----------

func TestDeterminant_Fixtures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"1x1", [][]float64{{-3.5}}, -3.5},
		{"2x2", [][]float64{{2, 1}, {3, 4}}, 5},
		{"upper-triangular", [][]float64{{1, 2, 3}, {0, 4, 5}, {0, 0, 6}}, 24},
		{"lower-triangular", [][]float64{{2, 0, 0}, {7, -1, 0}, {3, 9, 5}}, -10},
		{"3x3", [][]float64{{1, 2, 3}, {0, 4, 5}, {1, 0, 6}}, 22},
		{"duplicate-rows", [][]float64{{1, 2, 3}, {4, 5, 6}, {1, 2, 3}}, 0},
		{"dependent-rows", [][]float64{{1, 2, 3}, {2, 4, 6}, {7, 8, 9}}, 0},
		{"zero-column", [][]float64{{0, 1, 2}, {0, 3, 4}, {0, 5, 6}}, 0},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			det, err := matrix.Determinant[float64](MustRows(t, tc.rows))
			require.NoError(t, err)
			require.Equal(t, tc.want, det)
		})
	}
}

func TestDeterminant_Integer4x4(t *testing.T) {
	t.Parallel()

	A := MustRows(t, [][]int{
		{1, 0, 2, -1},
		{3, 0, 0, 5},
		{2, 1, 4, -3},
		{1, 0, 5, 0},
	})
	det, err := matrix.Determinant[int](A)
	require.NoError(t, err)
	require.Equal(t, 30, det)

	det2, err := matrix.Det[int](hide[int]{A})
	require.NoError(t, err)
	require.Equal(t, det, det2)
}

func TestDeterminant_Identity(t *testing.T) {
	t.Parallel()

	for n := 0; n <= 6; n++ {
		det, err := matrix.Determinant[float64](MustIdentity[float64](t, n))
		require.NoError(t, err)
		require.Equal(t, 1.0, det, "det(I_%d)", n)

		idet, err := matrix.Determinant[int](MustIdentity[int](t, n))
		require.NoError(t, err)
		require.Equal(t, 1, idet, "det(I_%d) int", n)
	}
}

func TestDeterminant_Complex(t *testing.T) {
	t.Parallel()

	A := MustRows(t, [][]complex128{{1i, 0}, {0, 1i}})
	det, err := matrix.Determinant[complex128](A)
	require.NoError(t, err)
	require.Equal(t, complex128(-1), det)
}

func TestDeterminant_TransposeInvariant(t *testing.T) {
	t.Parallel()

	A := RandIntDense(t, 5, 5, 9, 21)
	At, err := matrix.Transpose[int](A)
	require.NoError(t, err)

	d1, err := matrix.Determinant[int](A)
	require.NoError(t, err)
	d2, err := matrix.Determinant[int](At)
	require.NoError(t, err)
	require.Equal(t, d1, d2)
}

func TestDeterminant_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.Determinant[float64](MustDense[float64](t, 3, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.EqualError(t, err,
		"Determinant: ValidateSquareNonNil: ValidateSquare: matrix: dimension mismatch")

	_, err = matrix.Determinant[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	det, ok := matrix.TryDeterminant[float64](MustDense[float64](t, 3, 2))
	require.False(t, ok)
	require.Zero(t, det)

	det, ok = matrix.TryDeterminant[float64](MustDense[float64](t, 0, 0))
	require.True(t, ok)
	require.Equal(t, 1.0, det)

	det, ok = matrix.TryDeterminant[float64](MustRows(t, [][]float64{{2, 1}, {3, 4}}))
	require.True(t, ok)
	require.Equal(t, 5.0, det)
}

// ---------- Minor / Cofactor ----------

// TestCofactor_SignTable checks Cofactor == (-1)^(i+j) * Minor on every cell.
func TestCofactor_SignTable(t *testing.T) {
	t.Parallel()

	fixtures := map[string]*matrix.Dense[int]{
		"3x3": MustRows(t, [][]int{{1, 2, 3}, {0, 4, 5}, {1, 0, 6}}),
		"4x4": MustRows(t, [][]int{{1, 0, 2, -1}, {3, 0, 0, 5}, {2, 1, 4, -3}, {1, 0, 5, 0}}),
	}
	for name, A := range fixtures {
		n := A.Rows()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				minor, err := matrix.Minor[int](A, i, j)
				require.NoError(t, err)
				cof, err := matrix.Cofactor[int](A, i, j)
				require.NoError(t, err)

				sub, err := matrix.Submatrix[int](A, i, j)
				require.NoError(t, err)
				det, err := matrix.Determinant[int](sub)
				require.NoError(t, err)
				require.Equal(t, det, minor, "%s minor(%d,%d)", name, i, j)

				if (i+j)%2 == 0 {
					require.Equal(t, minor, cof, "%s cof(%d,%d)", name, i, j)
				} else {
					require.Equal(t, -minor, cof, "%s cof(%d,%d)", name, i, j)
				}
			}
		}
	}
}

func TestCofactor_Values(t *testing.T) {
	t.Parallel()

	A := MustRows(t, [][]int{{1, 2, 3}, {0, 4, 5}, {1, 0, 6}})
	minor, err := matrix.Minor[int](A, 0, 1)
	require.NoError(t, err)
	require.Equal(t, -5, minor)
	cof, err := matrix.Cofactor[int](A, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 5, cof)
}

func TestCofactor_Errors(t *testing.T) {
	t.Parallel()

	A := MustDense[float64](t, 2, 2)
	_, err := matrix.Cofactor[float64](A, 2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.Minor[float64](A, 0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.Cofactor[float64](MustDense[float64](t, 2, 3), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Minor[float64](nil, 0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ---------- CofactorMatrix / Adjugate ----------

func TestCofactorMatrix_3x3(t *testing.T) {
	t.Parallel()

	A := MustRows(t, [][]int{{1, 2, 3}, {0, 4, 5}, {1, 0, 6}})
	want := [][]int{{24, 5, -4}, {-12, 3, 2}, {-2, -5, 4}}

	C, err := matrix.CofactorMatrix[int](A)
	require.NoError(t, err)
	CompareExact(t, want, C)

	adj, err := matrix.Adjugate[int](A)
	require.NoError(t, err)
	CompareExact(t, [][]int{{24, -12, -2}, {5, 3, -5}, {-4, 2, 4}}, adj)

	adj2, err := matrix.Adj[int](hide[int]{A}, matrix.WithParallelThreshold(0), matrix.WithWorkers(2))
	require.NoError(t, err)
	require.Equal(t, adj.RawCopy(), adj2.RawCopy())
}

func TestCofactorMatrix_Degenerate(t *testing.T) {
	t.Parallel()

	C0, err := matrix.CofactorMatrix[float64](MustDense[float64](t, 0, 0))
	require.NoError(t, err)
	require.Equal(t, 0, C0.Rows())

	C1, err := matrix.CofactorMatrix[float64](MustRows(t, [][]float64{{5}}))
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1}}, C1)

	_, err = matrix.CofactorMatrix[float64](MustDense[float64](t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Adjugate[float64](MustDense[float64](t, 3, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Adjugate[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestCofactorMatrix_ParallelMatchesSequential asserts the worker pool
// produces bitwise the same cells as the inline i→j loop.
func TestCofactorMatrix_ParallelMatchesSequential(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 3, 5, 6} {
		A := RandDense(t, n, n, int64(100+n))

		seq, err := matrix.CofactorMatrix[float64](A, matrix.WithSequential())
		require.NoError(t, err)

		for _, workers := range []int{1, 2, 4, 16} {
			par, err := matrix.CofactorMatrix[float64](A,
				matrix.WithParallelThreshold(0), matrix.WithWorkers(workers))
			require.NoError(t, err)
			require.Equal(t, seq.RawCopy(), par.RawCopy(), "n=%d workers=%d", n, workers)
		}

		def, err := matrix.CofactorMatrix[float64](hide[float64]{A})
		require.NoError(t, err)
		require.Equal(t, seq.RawCopy(), def.RawCopy(), "n=%d default options", n)
	}
}

// TestCofactorMatrix_SequentialOverridesWorkers checks last-writer-wins between
// WithWorkers and WithSequential; both orders must give the same cells.
func TestCofactorMatrix_SequentialOverridesWorkers(t *testing.T) {
	t.Parallel()

	A := RandIntDense(t, 5, 5, 4, 5)
	a, err := matrix.CofactorMatrix[int](A, matrix.WithWorkers(3), matrix.WithSequential())
	require.NoError(t, err)
	b, err := matrix.CofactorMatrix[int](A, matrix.WithSequential(), matrix.WithWorkers(3))
	require.NoError(t, err)
	require.Equal(t, a.RawCopy(), b.RawCopy())
}

// TestAdjugate_Identity checks A·adj(A) == adj(A)·A == det(A)·I exactly over
// integers, including singular inputs.
func TestAdjugate_Identity(t *testing.T) {
	t.Parallel()

	inputs := []*matrix.Dense[int]{
		RandIntDense(t, 4, 4, 5, 1),
		RandIntDense(t, 5, 5, 3, 2),
		MustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}, {1, 2, 3}}), // singular
	}
	for k, A := range inputs {
		det, err := matrix.Determinant[int](A)
		require.NoError(t, err)
		adj, err := matrix.Adjugate[int](A, matrix.WithParallelThreshold(0))
		require.NoError(t, err)

		I, err := matrix.IdentityLike[int](A)
		require.NoError(t, err)
		want, err := matrix.Scale[int](I, det)
		require.NoError(t, err)

		left, err := matrix.Mul[int](A, adj)
		require.NoError(t, err)
		right, err := matrix.Mul[int](adj, A)
		require.NoError(t, err)

		eq, err := matrix.Equal[int](left, want)
		require.NoError(t, err)
		require.True(t, eq, "input %d: A·adj(A) != det·I", k)
		eq, err = matrix.Equal[int](right, want)
		require.NoError(t, err)
		require.True(t, eq, "input %d: adj(A)·A != det·I", k)
	}
}

// TestEngine_InputsUntouched ensures no engine entry point writes into its operand.
func TestEngine_InputsUntouched(t *testing.T) {
	t.Parallel()

	A := RandDense(t, 4, 4, 77)
	before := A.RawCopy()

	_, err := matrix.Determinant[float64](A)
	require.NoError(t, err)
	_, err = matrix.CofactorMatrix[float64](A, matrix.WithParallelThreshold(0))
	require.NoError(t, err)
	_, err = matrix.Adjugate[float64](A)
	require.NoError(t, err)
	_, err = matrix.Submatrix[float64](A, 1, 1)
	require.NoError(t, err)

	require.Equal(t, before, A.RawCopy())
}
