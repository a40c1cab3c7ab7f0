// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
package matrix

import "github.com/katalvlaran/qspin/cplx"

// Matrix represents a two-dimensional array of extended-complex values.
// Each method enforces bounds checking and returns clear errors on misuse.
// Users can implement this interface to provide custom storage layouts;
// the kernels take a fast path for *Dense and fall back to At otherwise.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (cplx.Complex, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v cplx.Complex) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
