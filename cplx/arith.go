// SPDX-License-Identifier: MIT

// Package cplx - field arithmetic on the extended plane.
//
// Behavior highlights:
//   - NaN is absorbing: any operation with an Undefined operand is Undefined.
//   - INF absorbs finite operands in Add/Sub/Mul; ∞+∞, ∞·0, 0/0, ∞/∞ are NaN.
//   - Division never panics: z/0 is INF for z ≠ 0 and z/∞ is ZERO for finite z.
//   - Finite results that overflow are re-tagged as INF.
//
// Complexity:
//   - Every operation is O(1), allocation-free.

package cplx

// Add returns z + w.
func (z Complex) Add(w Complex) Complex {
	if z.kind == Undefined || w.kind == Undefined {
		return NaN
	}
	if z.kind == Infinite && w.kind == Infinite {
		return NaN
	}
	if z.kind == Infinite || w.kind == Infinite {
		return INF
	}

	return fromArith(z.re+w.re, z.im+w.im)
}

// Sub returns z − w. Since −∞ == ∞, ∞ − ∞ is NaN like ∞ + ∞.
func (z Complex) Sub(w Complex) Complex { return z.Add(w.Neg()) }

// Neg returns −z. The point at infinity is its own negation.
func (z Complex) Neg() Complex {
	if z.kind != Finite {
		return z
	}

	return Complex{re: -z.re, im: -z.im}
}

// Conj returns the complex conjugate re − im·i.
func (z Complex) Conj() Complex {
	if z.kind != Finite {
		return z
	}

	return Complex{re: z.re, im: -z.im}
}

// Mul returns z · w.
func (z Complex) Mul(w Complex) Complex {
	if z.kind == Undefined || w.kind == Undefined {
		return NaN
	}
	if z.kind == Infinite || w.kind == Infinite {
		// ∞·0 is indeterminate; ∞ times anything else stays ∞.
		if z.IsZero() || w.IsZero() {
			return NaN
		}

		return INF
	}

	return fromArith(z.re*w.re-z.im*w.im, z.re*w.im+z.im*w.re)
}

// Div returns z / w.
//
//	z / 0 = ∞ (z ≠ 0),  0 / 0 = NaN
//	z / ∞ = 0 (z finite), ∞ / ∞ = NaN
//	∞ / w = ∞ (w finite)
func (z Complex) Div(w Complex) Complex {
	if z.kind == Undefined || w.kind == Undefined {
		return NaN
	}
	if w.IsZero() {
		if z.IsZero() {
			return NaN
		}

		return INF
	}
	if w.kind == Infinite {
		if z.kind == Infinite {
			return NaN
		}

		return ZERO
	}
	if z.kind == Infinite {
		return INF
	}

	q := complex(z.re, z.im) / complex(w.re, w.im)

	return fromArith(real(q), imag(q))
}

// Inv returns 1 / z.
func (z Complex) Inv() Complex { return ONE.Div(z) }

// Scale returns x · z for a real factor x.
func (z Complex) Scale(x float64) Complex { return z.Mul(Real(x)) }

// Sum adds values left to right. Sum() is ZERO.
func Sum(values ...Complex) Complex {
	acc := ZERO
	for _, v := range values {
		acc = acc.Add(v)
	}

	return acc
}
