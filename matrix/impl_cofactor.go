// SPDX-License-Identifier: MIT
// Package matrix - cofactor engine: minors, recursive determinant, cofactors,
// cofactor matrix and adjugate.
//
// Purpose:
//   - Laplace (cofactor) expansion along the first row, recursively, for any Number.
//   - Cofactor matrix with a bounded data-parallel fan-out over (row, col) cells.
//   - Adjugate as the transpose of the cofactor matrix.
//
// Determinism & Policy:
//   - Expansion terms are summed in ascending column order; floating-point
//     results are reproducible run to run.
//   - Every cofactor cell is computed by the same sequential recursion, so the
//     cofactor matrix is bitwise identical for any worker count.
//   - Source grids are read-only; every minor is a fresh slice, nothing is memoized.
//
// Complexity:
//   - determinant: O(n!) time, O(n²) live memory along the recursion (depth n).
//   - cofactor matrix: n² independent O((n-1)!) cells.
//
// AI-Hints:
//   - Intended for small n (≤ 10 or so). The factorial cost is deliberate.

package matrix

import "golang.org/x/sync/errgroup"

// submatrix copies the (r-1)×(c-1) grid obtained by deleting excludeRow and
// excludeCol from the r×c row-major buffer data. Relative order is preserved.
// Both indices are caller-guaranteed in range; there is no error path.
//
// Complexity: Time O(r*c), Space O((r-1)*(c-1)).
func submatrix[T Number](data []T, r, c, excludeRow, excludeCol int) []T {
	out := make([]T, 0, (r-1)*(c-1))
	var i, j, base int
	for i = 0; i < r; i++ {
		if i == excludeRow {
			continue
		}
		base = i * c
		for j = 0; j < c; j++ {
			if j == excludeCol {
				continue
			}
			out = append(out, data[base+j])
		}
	}

	return out
}

// determinant evaluates det of the n×n row-major buffer data by cofactor
// expansion along row 0.
// Implementation:
//   - n == 0: multiplicative identity (the empty product).
//   - n == 1: the single element.
//   - n == 2: closed form a*d - b*c.
//   - n  > 2: Σ_j (-1)^j · data[0,j] · det(minor(0,j)), j ascending.
//
// Notes:
//   - Squareness is NOT re-validated; callers pass n×n buffers only.
//   - Zero entries are not skipped: 0·det(minor) is still evaluated, so NaN/Inf
//     in a minor propagate the way plain expansion would.
func determinant[T Number](data []T, n int) T {
	switch n {
	case 0:
		return one[T]()
	case 1:
		return data[0]
	case 2:
		return data[0]*data[3] - data[1]*data[2]
	}

	var sum, term T
	for j := 0; j < n; j++ { // ascending j keeps float summation reproducible
		term = data[j] * determinant(submatrix(data, n, n, 0, j), n-1)
		if j%2 == 1 {
			term = -term
		}
		sum += term
	}

	return sum
}

// minorAt is det(submatrix(row, col)) of the n×n buffer data.
func minorAt[T Number](data []T, n, row, col int) T {
	return determinant(submatrix(data, n, n, row, col), n-1)
}

// cofactorAt is minorAt negated when row+col is odd.
func cofactorAt[T Number](data []T, n, row, col int) T {
	v := minorAt(data, n, row, col)
	if (row+col)%2 == 1 {
		return -v
	}

	return v
}

// cofactorCells fills out (n×n) with the cofactors of data.
// Implementation:
//   - Sequential: fixed i→j order, inline.
//   - Parallel: one errgroup task per (i,j) cell, bounded by o.workers;
//     g.Wait() is the join barrier before the caller transposes.
//
// Behavior highlights:
//   - Workers only read data (shared, immutable) and write the disjoint cell
//     out[i*n+j]; no locks are needed.
func cofactorCells[T Number](data []T, n int, out []T, o Options) {
	if !o.useParallel(n) {
		var i, j int
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				out[i*n+j] = cofactorAt(data, n, i, j)
			}
		}

		return
	}

	var g errgroup.Group
	g.SetLimit(o.workers)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			g.Go(func() error {
				out[i*n+j] = cofactorAt(data, n, i, j)
				return nil
			})
		}
	}
	_ = g.Wait() // tasks never fail; Wait is the barrier
}

// flatten exposes m as a row-major buffer for the engine.
// *Dense shares its backing slice (the engine never writes to it); any other
// Matrix is copied through At in i→j order.
func flatten[T Number](m Matrix[T], tag string) ([]T, error) {
	if d, ok := m.(*Dense[T]); ok {
		return d.data, nil
	}

	rows, cols := m.Rows(), m.Cols()
	out := make([]T, rows*cols)
	var (
		i, j int
		v    T
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, atErrorf(tag, i, j, err)
			}
			out[i*cols+j] = v
		}
	}

	return out, nil
}

// Submatrix returns a fresh (r-1)×(c-1) matrix equal to m without row
// excludeRow and column excludeCol. m may be rectangular.
// Implementation:
//   - Stage 1: ValidateNotNil, ValidateIndex (which also rejects empty shapes).
//   - Stage 2: flatten (no copy for *Dense) and copy the kept cells in order.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
//
// Complexity:
//   - Time O(r*c), Space O((r-1)*(c-1)).
//
// Notes:
//   - The engine's recursion uses the unexported, unchecked form; this facade
//     exists for callers outside the bounded recursion.
func Submatrix[T Number](m Matrix[T], excludeRow, excludeCol int) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	if err := ValidateIndex(m, excludeRow, excludeCol); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	data, err := flatten(m, opSubmatrix)
	if err != nil {
		return nil, err
	}

	rows, cols := m.Rows(), m.Cols()
	res := newDense[T](rows-1, cols-1, policyOf(m))
	copy(res.data, submatrix(data, rows, cols, excludeRow, excludeCol))

	return res, nil
}

// Minor returns the (row, col) minor of the square matrix m: the determinant
// of m with that row and column deleted (no sign applied).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrOutOfRange.
//
// Complexity:
//   - Time O((n-1)!), Space O(n²).
func Minor[T Number](m Matrix[T], row, col int) (T, error) {
	var zero T
	data, n, err := squareData(m, opMinor)
	if err != nil {
		return zero, err
	}
	if err = ValidateIndex(m, row, col); err != nil {
		return zero, matrixErrorf(opMinor, err)
	}

	return minorAt(data, n, row, col), nil
}

// Cofactor returns the (row, col) cofactor of the square matrix m:
// Minor(m, row, col), negated when row+col is odd.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrOutOfRange.
//
// Complexity:
//   - Time O((n-1)!), Space O(n²).
func Cofactor[T Number](m Matrix[T], row, col int) (T, error) {
	var zero T
	data, n, err := squareData(m, opCofactor)
	if err != nil {
		return zero, err
	}
	if err = ValidateIndex(m, row, col); err != nil {
		return zero, matrixErrorf(opCofactor, err)
	}

	return cofactorAt(data, n, row, col), nil
}

// CofactorMatrix returns C with C[i,j] = Cofactor(m, i, j).
// Implementation:
//   - Stage 1: ValidateSquareNonNil; flatten the source once.
//   - Stage 2: fill cells sequentially or through the bounded worker pool
//     (see WithWorkers / WithParallelThreshold / WithSequential).
//
// Behavior highlights:
//   - 0×0 → 0×0; 1×1 → [[1]] (the cofactor of the only cell is det of the empty minor).
//   - Output is identical for every worker configuration.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n² · (n-1)!) total work, Space O(n²) for the result.
func CofactorMatrix[T Number](m Matrix[T], opts ...Option) (*Dense[T], error) {
	data, n, err := squareData(m, opCofactorMat)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	res := newDense[T](n, n, policyOf(m))
	cofactorCells(data, n, res.data, o)

	return res, nil
}

// Adjugate returns adj(m) = CofactorMatrix(m)ᵀ.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Same as CofactorMatrix plus an O(n²) transpose.
//
// AI-Hints:
//   - A·adj(A) = det(A)·I holds even for singular A; useful as a sanity check.
func Adjugate[T Number](m Matrix[T], opts ...Option) (*Dense[T], error) {
	cof, err := CofactorMatrix(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	adj, err := Transpose[T](cof)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return adj, nil
}

// squareData runs the NotNil → Square guard shared by every engine entry point
// and returns the flattened source with its order.
func squareData[T Number](m Matrix[T], tag string) ([]T, int, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, 0, matrixErrorf(tag, err)
	}
	data, err := flatten(m, tag)
	if err != nil {
		return nil, 0, err
	}

	return data, m.Rows(), nil
}
