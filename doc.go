// Package cofactor is a small generic dense-matrix library built around a
// cofactor-expansion determinant and an adjugate-based inverse.
//
// What is in the box?
//
//	matrix/     Dense[T] grid over any built-in numeric type, arithmetic
//	            kernels (Add, Sub, Mul, Scale, Transpose, MatVec, Equal,
//	            AllClose) and the cofactor engine (Submatrix, Minor,
//	            Cofactor, CofactorMatrix, Adjugate, Determinant, Inverse,
//	            Solve and the comma-ok TryDeterminant / TryInverse).
//	examples/   a runnable program solving a 3×3 mixing problem.
//
// Conventions:
//
//   - det of the 0×0 matrix is 1; the 0×0 matrix is its own inverse.
//   - Singularity is an exact det == 0 test.
//   - Integer element types truncate on division, so integer inverses are
//     exact only for |det| == 1.
//
// The determinant is O(n!); the library targets small matrices where the
// explicit cofactor structure is the point. The cofactor matrix is computed
// on a bounded worker pool (golang.org/x/sync/errgroup) and is identical for
// every worker count.
//
// Quick start:
//
//	A, _ := matrix.NewFromRows([][]float64{{4, 7}, {2, 6}})
//	det, _ := matrix.Determinant[float64](A) // 10
//	inv, err := matrix.Inverse[float64](A)   // [[0.6 -0.7] [-0.2 0.4]]
//	if errors.Is(err, matrix.ErrSingular) { ... }
package cofactor
