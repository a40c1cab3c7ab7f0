// SPDX-License-Identifier: MIT
// Package matrix - element-wise maps and comparisons.
//
// Purpose:
//   - Apply a pure function to every element (Apply, Scale, Conj, Snap).
//   - Compare matrices exactly (Equal) or within a tolerance (AllClose).
//
// Determinism:
//   - Flat 0..n-1 traversal; results never alias inputs.

package matrix

import "github.com/katalvlaran/qspin/cplx"

const (
	opApply    = "Apply"
	opAllClose = "AllClose"
	opSnap     = "Snap"
)

// mapElements allocates out[i] = fn(in[i]) for every element of m.
func mapElements(m Matrix, opTag string, fn func(cplx.Complex) cplx.Complex) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	src, err := flatten(m)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newResult(m.Rows(), m.Cols())
	for idx, v := range src {
		res.data[idx] = fn(v)
	}

	return res, nil
}

// Apply returns fn applied to every element of m.
// Errors: ErrNilMatrix; a nil fn is a programmer error and panics.
// Complexity: O(r*c) calls of fn.
func Apply(m Matrix, fn func(cplx.Complex) cplx.Complex) (Matrix, error) {
	return mapElements(m, opApply, fn)
}

// Snap forces components with magnitude ≤ eps to +0 (see cplx.Complex.Snap).
// Used before printing results that carry rounding noise.
func Snap(m Matrix, eps float64) (Matrix, error) {
	return mapElements(m, opSnap, func(v cplx.Complex) cplx.Complex { return v.Snap(eps) })
}

// Equal reports exact structural equality: same shape and every pair of
// elements cplx-Equal (so -0 equals +0 and NaN equals NaN).
// Nil matrices are never equal to anything.
// Complexity: O(r*c).
func Equal(a, b Matrix) bool {
	if ValidateBinarySameShape(a, b) != nil {
		return false
	}
	ad, err := flatten(a)
	if err != nil {
		return false
	}
	bd, err := flatten(b)
	if err != nil {
		return false
	}
	for idx := range ad {
		if !ad[idx].Equal(bd[idx]) {
			return false
		}
	}

	return true
}

// AllClose reports whether a and b have the same shape and every pair of
// elements agrees within eps (see cplx.Complex.ApproxEqual).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func AllClose(a, b Matrix, eps float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	ad, err := flatten(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	bd, err := flatten(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for idx := range ad {
		if !ad[idx].ApproxEqual(bd[idx], eps) {
			return false, nil
		}
	}

	return true, nil
}
