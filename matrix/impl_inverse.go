// SPDX-License-Identifier: MIT
// Package matrix - determinant and inverse entry points.
//
// Purpose:
//   - The only validated doors into the recursive determinant and the
//     adjugate-based inverse.
//   - Two surfaces per operation: error-returning (sentinels, errors.Is) and
//     comma-ok (Try*) for callers that only need success/failure.
//
// Failure taxonomy (exhaustive, mutually exclusive for non-nil input):
//   - ErrDimensionMismatch: the matrix is not square.
//   - ErrSingular:          square, determinant exactly zero.
//
// Numeric policy:
//   - Singularity is an exact `det == 0` test. No tolerance is applied, so a
//     float matrix that is singular in exact arithmetic may come out "invertible"
//     with huge entries if rounding leaves det ≠ 0.

package matrix

// Determinant returns det(m) by cofactor expansion along the first row.
// Implementation:
//   - Stage 1: ValidateSquareNonNil (nil → ErrNilMatrix, non-square → ErrDimensionMismatch).
//   - Stage 2: 0×0 → 1 (empty-matrix convention), before any recursion.
//   - Stage 3: recursive expansion on the flat buffer (no copy for *Dense).
//
// Returns:
//   - T: the determinant; the additive identity on failure.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped "Determinant: ...").
//
// Determinism:
//   - Columns are summed in ascending order at every recursion level.
//
// Complexity:
//   - Time O(n!), Space O(n²) along the recursion.
func Determinant[T Number](m Matrix[T]) (T, error) {
	var zero T
	data, n, err := squareData(m, opDeterminant)
	if err != nil {
		return zero, err
	}
	if n == 0 {
		return one[T](), nil
	}

	return determinant(data, n), nil
}

// TryDeterminant is the comma-ok form of Determinant.
// ok is false (and det the additive identity) when m is nil or not square.
func TryDeterminant[T Number](m Matrix[T]) (det T, ok bool) {
	v, err := Determinant(m)
	if err != nil {
		var zero T
		return zero, false
	}

	return v, true
}

// Inverse returns m⁻¹ = adj(m) · (1/det(m)).
// Implementation (each step short-circuits):
//   - Stage 1: ValidateSquareNonNil → ErrNilMatrix / ErrDimensionMismatch.
//   - Stage 2: 0×0 → fresh 0×0 (the empty matrix is its own inverse).
//   - Stage 3: det via Determinant; det == 0 (exact) → ErrSingular.
//   - Stage 4: 1×1 → [[1/a]] (a == 0 → ErrSingular).
//   - Stage 5: n ≥ 2 → Scale(Adjugate(m), 1/det).
//
// Inputs:
//   - m: square matrix.
//   - opts: parallel policy for the cofactor fan-out (WithWorkers, WithSequential, ...).
//
// Returns:
//   - *Dense[T]: freshly allocated inverse carrying m's numeric policy.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (wrapped "Inverse: ...").
//
// Complexity:
//   - Time O(n² · (n-1)!) for the adjugate plus O(n!) for det; Space O(n²).
//
// Notes:
//   - Integer T: 1/det truncates, so only |det| == 1 yields a true inverse.
//
// AI-Hints:
//   - Check A·Inverse(A) against I with AllClose for float T.
func Inverse[T Number](m Matrix[T], opts ...Option) (*Dense[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := m.Rows()
	if n == 0 {
		return newDense[T](0, 0, policyOf(m)), nil
	}

	det, err := Determinant(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	var zero T
	if det == zero {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	if n == 1 {
		a, err := m.At(0, 0)
		if err != nil {
			return nil, atErrorf(opInverse, 0, 0, err)
		}
		if a == zero {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
		res := newDense[T](1, 1, policyOf(m))
		res.data[0] = one[T]() / a

		return res, nil
	}

	adj, err := Adjugate(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv, err := Scale[T](adj, one[T]()/det)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}

// TryInverse is the comma-ok form of Inverse.
// ok is false (and inv nil) when m is nil, not square, or singular.
func TryInverse[T Number](m Matrix[T], opts ...Option) (inv *Dense[T], ok bool) {
	res, err := Inverse(m, opts...)
	if err != nil {
		return nil, false
	}

	return res, true
}

// Solve returns x with m·x = b, computed as Inverse(m)·b.
// Implementation:
//   - Stage 1: ValidateSquareNonNil, then len(b) == n.
//   - Stage 2: Inverse(m) (carries ErrSingular), then MatVec.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square or len(b) != n), ErrSingular.
//
// Complexity:
//   - Dominated by Inverse; the product is O(n²).
//
// Notes:
//   - b is never mutated; x is freshly allocated. n == 0 yields an empty x.
func Solve[T Number](m Matrix[T], b []T, opts ...Option) ([]T, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, m.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	inv, err := Inverse(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	x, err := MatVec[T](inv, b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return x, nil
}
