// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense grid, the arithmetic
// kernels and the cofactor engine.
// This file intentionally contains ONLY type-level declarations (numeric
// constraints and the public Matrix interface). Errors and options live in
// dedicated files (errors.go, options.go) per the package conventions.
package matrix

import "golang.org/x/exp/constraints"

// Number is the scalar type set every grid is parameterized over.
// All members provide + - * / and ==, a zero value that is the additive
// identity, and a representable constant 1 that is the multiplicative identity.
//
// Notes:
//   - Integer division truncates. Inverse of an integer grid is exact only when
//     adj(A)/det(A) is integral (e.g. unimodular matrices).
//   - Complex types have no ordering; use Real where a comparison is required.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Real is the ordered subset of Number (integers and floats).
// Used by tolerant comparisons (AllClose) that need |x| and <=.
type Real interface {
	constraints.Integer | constraints.Float
}

// Matrix represents a two-dimensional mutable array of T values.
//
// Every kernel in this package accepts a Matrix[T]; concrete *Dense[T]
// operands unlock flat-buffer fast paths, anything else goes through At/Set.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix[T Number] interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v T) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix[T]
}

// one returns the multiplicative identity of T.
func one[T Number]() T { return T(1) }

// isNonFinite reports whether v is NaN or ±Inf (or, for complex T, has such a component).
// v-v is 0 for every finite value and NaN otherwise; integers are always finite.
func isNonFinite[T Number](v T) bool {
	d := v - v

	return d != d
}
