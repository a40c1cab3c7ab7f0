// SPDX-License-Identifier: MIT
// Package matrix - structural predicates.
//
// Purpose:
//   - IsHermitian: M == M† within eps.
//   - IsUnitary:   M†·M == I within eps.
//
// Predicates never return errors: a nil or non-square matrix simply is not
// Hermitian or unitary.

package matrix

// IsSquare reports whether m is non-nil and square.
func IsSquare(m Matrix) bool {
	return ValidateSquare(m) == nil
}

// IsHermitian reports whether m equals its conjugate transpose.
// Implementation:
//   - Stage 1: reject nil / non-square.
//   - Stage 2: build M† explicitly and compare with AllClose(eps).
//
// Options: WithEpsilon (default DefaultEpsilon; WithEpsilon(0) is exact).
// Complexity: O(n²).
func IsHermitian(m Matrix, opts ...Option) bool {
	if !IsSquare(m) {
		return false
	}
	o := gatherOptions(opts...)

	adj, err := ConjTranspose(m)
	if err != nil {
		return false
	}
	ok, err := AllClose(m, adj, o.eps)

	return err == nil && ok
}

// IsUnitary reports whether M†·M equals the identity of the same order.
// Implementation:
//   - Stage 1: reject nil / non-square.
//   - Stage 2: form M†, multiply, compare to NewIdentity(n) with AllClose(eps).
//
// Options: WithEpsilon.
// Complexity: O(n³).
func IsUnitary(m Matrix, opts ...Option) bool {
	if !IsSquare(m) {
		return false
	}
	o := gatherOptions(opts...)

	adj, err := ConjTranspose(m)
	if err != nil {
		return false
	}
	prod, err := Mul(adj, m)
	if err != nil {
		return false
	}
	id, err := NewIdentity(m.Rows())
	if err != nil {
		return false
	}
	ok, err := AllClose(prod, id, o.eps)

	return err == nil && ok
}
