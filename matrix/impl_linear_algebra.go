// SPDX-License-Identifier: MIT

// Package matrix - complex linear-algebra kernels.
//
// Purpose:
//   - Add/Sub/Mul/Scale/Transpose/Conj/ConjTranspose for any shape.
//   - Determinant/Inverse in closed form for 2×2 only.
//
// Determinism:
//   - Fixed loop orders (i→k→j for Mul, flat 0..n-1 elsewhere).
//   - Every kernel allocates a fresh *Dense; operands are never mutated.
//
// AI-Hints:
//   - Pass *Dense operands to unlock the flat-slice fast path; other
//     implementations are read once through At into a flat buffer.
//   - Transpose does NOT conjugate. Use ConjTranspose for the Hermitian adjoint.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/qspin/cplx"
)

// ---------- operation tags (error context) ----------

const (
	opAdd           = "Add"
	opSub           = "Sub"
	opMul           = "Mul"
	opScale         = "Scale"
	opTranspose     = "Transpose"
	opConj          = "Conj"
	opConjTranspose = "ConjTranspose"
	opDeterminant   = "Determinant"
	opInverse       = "Inverse"
)

// matrixErrorf wraps err with an operation tag; errors.Is still matches the sentinel.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// flatten returns the row-major elements of m. For *Dense it returns the
// backing slice itself, so callers must treat the result as read-only.
func flatten(m Matrix) ([]cplx.Complex, error) {
	if d, ok := m.(*Dense); ok {
		return d.data, nil
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]cplx.Complex, rows*cols)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out[i*cols+j] = v
		}
	}

	return out, nil
}

// addSub computes elementwise out = a ± b. Shared by Add and Sub.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func addSub(a, b Matrix, subtract bool, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	ad, err := flatten(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	bd, err := flatten(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newResult(a.Rows(), a.Cols())
	for idx := range res.data { // deterministic 0..n-1
		if subtract {
			res.data[idx] = ad[idx].Sub(bd[idx])
		} else {
			res.data[idx] = ad[idx].Add(bd[idx])
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, false, opAdd) }

// Sub computes the element-wise difference C = A − B and returns a fresh Dense result.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, true, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: Flatten both operands, then accumulate with i→k→j strides.
//
// Behavior highlights:
//   - Products are accumulated in k order for each (i, j), so INF/NaN
//     propagate by the cplx rules (an ∞·0 term makes the cell NaN).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	ad, err := flatten(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bd, err := flatten(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res := newResult(aRows, bCols)
	var (
		i, j, k                            int
		av                                 cplx.Complex
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = ad[rowOffsetA+k]
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] = res.data[rowOffsetR+j].Add(av.Mul(bd[rowOffsetB+j]))
			}
		}
	}

	return res, nil
}

// Scale returns z·M element-wise.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Scale(m Matrix, z cplx.Complex) (Matrix, error) {
	return mapElements(m, opScale, func(v cplx.Complex) cplx.Complex { return z.Mul(v) })
}

// ScaleReal returns x·M element-wise for a real factor.
func ScaleReal(m Matrix, x float64) (Matrix, error) { return Scale(m, cplx.Real(x)) }

// Conj conjugates every element; the shape is unchanged.
// Errors: ErrNilMatrix.
func Conj(m Matrix) (Matrix, error) {
	return mapElements(m, opConj, cplx.Complex.Conj)
}

// Transpose returns a new matrix with rows and columns swapped (Mᵀ).
// Elements are copied verbatim; no conjugation happens here.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	return transpose(m, false, opTranspose)
}

// ConjTranspose returns the Hermitian adjoint M† = conj(Mᵀ), computed in one pass.
// Errors: ErrNilMatrix.
func ConjTranspose(m Matrix) (Matrix, error) {
	return transpose(m, true, opConjTranspose)
}

func transpose(m Matrix, conjugate bool, opTag string) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	src, err := flatten(m)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res := newResult(cols, rows)
	var i, j int
	var v cplx.Complex
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v = src[i*cols+j]
			if conjugate {
				v = v.Conj()
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Determinant returns ad − bc for a 2×2 matrix [[a, b], [c, d]].
// Errors: ErrNilMatrix, ErrUnsupportedShape (any other shape).
// Complexity: O(1).
func Determinant(m Matrix) (cplx.Complex, error) {
	if err := Validate2x2(m); err != nil {
		return cplx.NaN, matrixErrorf(opDeterminant, err)
	}
	d, err := flatten(m)
	if err != nil {
		return cplx.NaN, matrixErrorf(opDeterminant, err)
	}

	return det2(d), nil
}

func det2(d []cplx.Complex) cplx.Complex {
	return d[0].Mul(d[3]).Sub(d[1].Mul(d[2]))
}

// Inverse returns M⁻¹ for a 2×2 matrix via the adjugate:
//
//	[[a, b], [c, d]]⁻¹ = 1/(ad − bc) · [[d, −b], [−c, a]]
//
// Errors:
//   - ErrNilMatrix,
//   - ErrUnsupportedShape (not 2×2),
//   - ErrSingular (determinant equals cplx.ZERO),
//   - ErrUndefined (determinant is INF or NaN).
//
// Complexity: O(1).
func Inverse(m Matrix) (Matrix, error) {
	if err := Validate2x2(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	d, err := flatten(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	det := det2(d)
	switch {
	case det.IsZero():
		return nil, matrixErrorf(opInverse, ErrSingular)
	case !det.IsFinite():
		return nil, matrixErrorf(opInverse, fmt.Errorf("determinant %v: %w", det, ErrUndefined))
	}

	// adj(M) / det, entry by entry.
	res := newResult(2, 2)
	res.data[0] = d[3].Div(det)
	res.data[1] = d[1].Neg().Div(det)
	res.data[2] = d[2].Neg().Div(det)
	res.data[3] = d[0].Div(det)

	return res, nil
}
