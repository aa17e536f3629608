// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication: each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.

package matrix

// ---------- Constructors & Utilities (O(1) alloc + O(rc) zeroing by runtime) ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
//
// Note: Returns (*Dense, error) to surface ErrInvalidDimensions.
func NewZeros[T Number](rows, cols int, opts ...Option) (*Dense[T], error) {
	return NewDense[T](rows, cols, opts...)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// n == 0 yields the 0×0 matrix.
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
//
// AI-Hints: Use as the reference for A·A⁻¹ checks.
func NewIdentity[T Number](n int, opts ...Option) (*Dense[T], error) {
	I, err := NewDense[T](n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		I.data[i*n+i] = one[T]()
	}

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape and policy as m.
// Complexity: O(1) alloc + O(rc) zeroing.
func ZerosLike[T Number](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return newDense[T](m.Rows(), m.Cols(), policyOf(m)), nil
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n^2). Validates square via central validator.
func IdentityLike[T Number](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	n := m.Rows()
	I := newDense[T](n, n, policyOf(m))
	for i := 0; i < n; i++ {
		I.data[i*n+i] = one[T]()
	}

	return I, nil
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Thin wrapper over Matrix.Clone for API discoverability.
func CloneMatrix[T Number](m Matrix[T]) Matrix[T] {
	return m.Clone()
}

// ---------- Arithmetic (facades map 1:1 to kernels; O(rc) unless noted) ----------

// Sum is an alias for Add: element-wise a + b.
func Sum[T Number](a, b Matrix[T]) (*Dense[T], error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff[T Number](a, b Matrix[T]) (*Dense[T], error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
// Complexity: O(r*n*c).
func Product[T Number](a, b Matrix[T]) (*Dense[T], error) { return Mul(a, b) }

// T is an alias for Transpose: returns mᵀ.
func T[E Number](m Matrix[E]) (*Dense[E], error) { return Transpose(m) }

// ScaleBy is an alias for Scale: α*m.
func ScaleBy[T Number](m Matrix[T], alpha T) (*Dense[T], error) { return Scale(m, alpha) }

// MatVecMul is an alias for MatVec: y = m·x.
func MatVecMul[T Number](m Matrix[T], x []T) ([]T, error) { return MatVec(m, x) }

// ---------- Cofactor engine ----------

// Det is an alias for Determinant.
// Complexity: O(n!).
func Det[T Number](m Matrix[T]) (T, error) { return Determinant(m) }

// InverseOf is an alias for Inverse: returns A⁻¹ via the adjugate.
// Complexity: O(n² · (n-1)!).
func InverseOf[T Number](m Matrix[T], opts ...Option) (*Dense[T], error) { return Inverse(m, opts...) }

// Adj is an alias for Adjugate.
func Adj[T Number](m Matrix[T], opts ...Option) (*Dense[T], error) { return Adjugate(m, opts...) }
