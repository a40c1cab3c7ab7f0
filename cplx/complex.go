// SPDX-License-Identifier: MIT

// Package cplx - value type, constructors, accessors and equality.
//
// Purpose:
//   - Keep the tag (Finite / Infinite / Undefined) explicit so the limit
//     identities of the extended plane are testable values, not IEEE accidents.
//   - Normalise every IEEE ±Inf / NaN input at construction time.
//
// Determinism:
//   - Values are immutable; every method returns a new Complex.

package cplx

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats/scalar"
)

// Kind tags a Complex as a finite point, the point at infinity or undefined.
type Kind uint8

const (
	// Finite is a point (re, im) with both components finite.
	Finite Kind = iota
	// Infinite is the single point at infinity of the extended plane.
	Infinite
	// Undefined is the result of an indeterminate form (0/0, ∞·0, ∞−∞, ...).
	Undefined
)

// String returns a lower-case name for the kind.
func (k Kind) String() string {
	switch k {
	case Finite:
		return "finite"
	case Infinite:
		return "infinite"
	case Undefined:
		return "undefined"
	default:
		return "unknown"
	}
}

// Complex is an immutable extended-complex number.
// The zero value is Finite(0, 0), i.e. ZERO.
type Complex struct {
	re, im float64 // meaningful only when kind == Finite
	kind   Kind
}

// Sentinels. They are plain values; copying them is free and safe.
var (
	ZERO = Complex{}
	ONE  = Complex{re: 1}
	I    = Complex{im: 1}
	INF  = Complex{kind: Infinite}
	NaN  = Complex{kind: Undefined}
)

// New builds re + im·i.
// Any NaN component yields NaN; otherwise any ±Inf component yields INF.
func New(re, im float64) Complex {
	if math.IsNaN(re) || math.IsNaN(im) {
		return NaN
	}
	if math.IsInf(re, 0) || math.IsInf(im, 0) {
		return INF
	}

	return Complex{re: re, im: im}
}

// Real builds re + 0i.
func Real(re float64) Complex { return New(re, 0) }

// Imag builds 0 + im·i.
func Imag(im float64) Complex { return New(0, im) }

// FromComplex128 converts a builtin complex value, normalising IEEE specials.
func FromComplex128(c complex128) Complex { return New(real(c), imag(c)) }

// fromArith wraps the result of finite arithmetic on finite operands.
// Such a computation only leaves the finite range by overflowing (a NaN
// component then comes from ∞−∞ inside the formula), so both cases are INF.
func fromArith(re, im float64) Complex {
	if math.IsNaN(re) || math.IsNaN(im) || math.IsInf(re, 0) || math.IsInf(im, 0) {
		return INF
	}

	return Complex{re: re, im: im}
}

// Re returns the real component; +Inf for INF and NaN for Undefined.
func (z Complex) Re() float64 {
	switch z.kind {
	case Infinite:
		return math.Inf(1)
	case Undefined:
		return math.NaN()
	}

	return z.re
}

// Im returns the imaginary component; +Inf for INF and NaN for Undefined.
func (z Complex) Im() float64 {
	switch z.kind {
	case Infinite:
		return math.Inf(1)
	case Undefined:
		return math.NaN()
	}

	return z.im
}

// Kind reports the tag of z.
func (z Complex) Kind() Kind { return z.kind }

// IsZero reports whether z is the finite zero (either signed zero).
func (z Complex) IsZero() bool { return z.kind == Finite && z.re == 0 && z.im == 0 }

// IsInf reports whether z is the point at infinity.
func (z Complex) IsInf() bool { return z.kind == Infinite }

// IsNaN reports whether z is undefined.
func (z Complex) IsNaN() bool { return z.kind == Undefined }

// IsFinite reports whether z is a finite point.
func (z Complex) IsFinite() bool { return z.kind == Finite }

// IsReal reports whether z is finite with a zero imaginary part.
func (z Complex) IsReal() bool { return z.kind == Finite && z.im == 0 }

// Complex128 converts z to a builtin complex value.
// INF maps to cmplx.Inf() and NaN to cmplx.NaN().
func (z Complex) Complex128() complex128 {
	switch z.kind {
	case Infinite:
		return cmplx.Inf()
	case Undefined:
		return cmplx.NaN()
	}

	return complex(z.re, z.im)
}

// Equal reports structural equality: tags first, then components with ==.
// Component comparison uses float ==, so -0 equals +0. Two NaN sentinels are
// equal, which lets callers ask "did this evaluate to NaN" with Equal.
func (z Complex) Equal(w Complex) bool {
	if z.kind != w.kind {
		return false
	}
	if z.kind != Finite {
		return true
	}

	return z.re == w.re && z.im == w.im
}

// ApproxEqual reports whether z and w carry the same tag and, when finite,
// both components agree within eps (absolute or relative).
func (z Complex) ApproxEqual(w Complex, eps float64) bool {
	if z.kind != w.kind {
		return false
	}
	if z.kind != Finite {
		return true
	}

	return scalar.EqualWithinAbsOrRel(z.re, w.re, eps, eps) &&
		scalar.EqualWithinAbsOrRel(z.im, w.im, eps, eps)
}

// Key is a comparable form of Complex, consistent with Equal.
type Key struct {
	Re, Im float64
	Kind   Kind
}

// Key returns a map key for z. Signed zeros collapse to +0 and the
// components of INF / NaN are zeroed, so Equal values share a key.
func (z Complex) Key() Key {
	if z.kind != Finite {
		return Key{Kind: z.kind}
	}

	re, im := z.re, z.im
	if re == 0 {
		re = 0
	}
	if im == 0 {
		im = 0
	}

	return Key{Re: re, Im: im, Kind: Finite}
}
