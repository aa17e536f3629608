// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels and the cofactor engine.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/cofactor/matrix"
	"github.com/stretchr/testify/require"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Stage 1: Embed matrix.Matrix to forward all methods.
//   - Stage 2: Use hide[T]{X} in tests to force non-*Dense (fallback) paths.
//
// Notes:
//   - Useful to assert fast-path == fallback bitwise.
//
// AI-Hints:
//   - Prefer wrapping ONLY the operand you want to de-opt; keep the other one *Dense to isolate path differences.
type hide[T matrix.Number] struct{ matrix.Matrix[T] }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense[T matrix.Number](t testing.TB, r, c int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDense[T](r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustRows BUILDS a *Dense from literal rows or fails the test.
// Implementation:
//   - Stage 1: matrix.NewFromRows(rows).
//   - Stage 2: require.NoError to abort the test early.
//
// AI-Hints:
//   - The most readable way to spell a fixture: MustRows(t, [][]float64{{1,2},{3,4}}).
func MustRows[T matrix.Number](t testing.TB, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err, "NewFromRows")

	return m
}

// MustIdentity RETURNS I_n or fails the test.
func MustIdentity[T matrix.Number](t testing.TB, n int) *matrix.Dense[T] {
	t.Helper()
	I, err := matrix.NewIdentity[T](n)
	require.NoError(t, err, "NewIdentity(%d)", n)

	return I
}

// MustAt READS m[i,j] or fails the test.
func MustAt[T matrix.Number](t testing.TB, m matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// MustSet WRITES m[i,j] = v or fails the test.
func MustSet[T matrix.Number](t testing.TB, m matrix.Matrix[T], i, j int, v T) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d)", i, j)
}

// RandDense RETURNS an r×c float64 matrix with entries in [-1, 1) from a fixed seed.
// Determinism:
//   - Same seed → same matrix on every run.
func RandDense(t testing.TB, r, c int, seed int64) *matrix.Dense[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1 // 0*2-1=-1 || 1*2-1=1
	}
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err)

	return m
}

// RandIntDense RETURNS an r×c int matrix with entries in [-limit, limit] from a fixed seed.
func RandIntDense(t testing.TB, r, c, limit int, seed int64) *matrix.Dense[int] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]int, r*c)
	for i := range vals {
		vals[i] = rng.Intn(2*limit+1) - limit
	}
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err)

	return m
}

// CompareExact ASSERTS m equals want cell by cell (exact ==).
func CompareExact[T matrix.Number](t testing.TB, want [][]T, m matrix.Matrix[T]) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "Rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "Cols[%d]", i)
		for j := range want[i] {
			require.Equal(t, want[i][j], MustAt(t, m, i, j), "m[%d,%d]", i, j)
		}
	}
}

// CompareClose ASSERTS m equals want within an absolute delta per cell.
func CompareClose(t testing.TB, want [][]float64, m matrix.Matrix[float64], delta float64) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "Rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "Cols[%d]", i)
		for j := range want[i] {
			require.InDelta(t, want[i][j], MustAt(t, m, i, j), delta, "m[%d,%d]", i, j)
		}
	}
}

// RequireIdentityWithin ASSERTS m ≈ I_n with absolute tolerance atol.
func RequireIdentityWithin(t testing.TB, m matrix.Matrix[float64], atol float64) {
	t.Helper()
	require.Equal(t, m.Rows(), m.Cols(), "identity must be square")
	ok, err := matrix.AllClose[float64](m, MustIdentity[float64](t, m.Rows()), 0, atol)
	require.NoError(t, err)
	require.True(t, ok, "not identity within %g:\n%v", atol, m)
}

// diagonallyDominant RETURNS a seeded n×n float64 matrix with |a_ii| > Σ|a_ij|,
// which is always invertible and well-conditioned.
func diagonallyDominant(t testing.TB, n int, seed int64) *matrix.Dense[float64] {
	t.Helper()
	A := RandDense(t, n, n, seed)
	for i := 0; i < n; i++ {
		MustSet(t, A, i, i, float64(n)+1)
	}

	return A
}
