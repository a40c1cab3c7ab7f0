// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.
// Panics are reserved for programmer errors (option constructors, Must).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with fmt.Errorf("<Op>: %w", ErrX)
// so callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> dimension mismatch -> unsupported shape -> singular.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, Mul where a.Cols != b.Rows, or a value
	// count that does not match the requested shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrUnsupportedShape marks an operation defined only for specific shapes
	// (Determinant and Inverse are 2×2 only).
	ErrUnsupportedShape = errors.New("matrix: unsupported shape")

	// ErrSingular is returned by Inverse when the determinant equals zero.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrInvalidCast is returned when a matrix with more than one column is
	// converted to a vector.
	ErrInvalidCast = errors.New("matrix: cannot cast multi-column matrix to a vector")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrUndefined signals an undefined (NaN) element where the numeric policy
	// requires a defined value (Set without WithAllowUndefined, Inverse of a
	// matrix whose determinant is not finite).
	ErrUndefined = errors.New("matrix: undefined value")
)
