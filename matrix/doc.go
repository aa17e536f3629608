// Package matrix offers a generic dense matrix and a cofactor-expansion
// determinant/inverse engine.
//
// The matrix package provides:
//
//   - Dense[T], a row-major grid over any built-in numeric type (integers,
//     floats, complex numbers) with bounds-checked accessors and an optional
//     NaN/Inf ingestion guard.
//   - Arithmetic kernels: Add, Sub, Scale, Mul, Transpose, MatVec, Equal, AllClose.
//   - The cofactor engine: Submatrix, Minor, Cofactor, CofactorMatrix,
//     Adjugate, Determinant, Inverse and Solve, plus comma-ok forms
//     TryDeterminant and TryInverse.
//
// Conventions:
//
//   - det of the 0×0 matrix is 1, and the 0×0 matrix is its own inverse.
//   - A matrix is singular iff its determinant is exactly zero; no tolerance
//     is applied.
//   - Every operation returns a freshly allocated result and never mutates
//     its inputs.
//
// The determinant is O(n!) by design and meant for small matrices. The
// cofactor matrix fans out over a bounded worker pool for larger orders; the
// result does not depend on the number of workers.
//
//	A, _ := matrix.NewFromRows([][]float64{{4, 7}, {2, 6}})
//	det, _ := matrix.Determinant[float64](A)  // 10
//	inv, ok := matrix.TryInverse[float64](A)  // [[0.6, -0.7], [-0.2, 0.4]], true
package matrix
