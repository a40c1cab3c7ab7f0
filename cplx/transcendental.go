// SPDX-License-Identifier: MIT

package cplx

import (
	"math"
	"math/cmplx"
)

// Mod returns |z|. It is +Inf for INF and NaN for an undefined value.
func (z Complex) Mod() float64 {
	switch z.kind {
	case Infinite:
		return math.Inf(1)
	case Undefined:
		return math.NaN()
	}

	return math.Hypot(z.re, z.im)
}

// Abs is an alias of Mod.
func (z Complex) Abs() float64 { return z.Mod() }

// Arg returns the principal argument in (−π, π]; NaN unless z is finite.
func (z Complex) Arg() float64 {
	if z.kind != Finite {
		return math.NaN()
	}

	return math.Atan2(z.im, z.re)
}

// Exp returns e^z. The exponential has no limit at ∞, so Exp(INF) is NaN.
func Exp(z Complex) Complex {
	if z.kind != Finite {
		return NaN
	}
	e := cmplx.Exp(complex(z.re, z.im))

	return fromArith(real(e), imag(e))
}

// Ln returns the principal natural logarithm. Ln(0) and Ln(∞) are both ∞.
func Ln(z Complex) Complex {
	switch {
	case z.kind == Undefined:
		return NaN
	case z.kind == Infinite, z.IsZero():
		return INF
	}
	l := cmplx.Log(complex(z.re, z.im))

	return fromArith(real(l), imag(l))
}

// Pow returns z^w with a complex exponent (principal branch).
//
//	z^0 = 1 for finite z
//	0^w = 0 when Re(w) > 0, ∞ when Re(w) < 0, NaN otherwise
//	∞^w = ∞ when Re(w) > 0, 0 when Re(w) < 0, NaN otherwise
//	z^∞ = NaN
func Pow(z, w Complex) Complex {
	if z.kind == Undefined || w.kind != Finite {
		return NaN
	}
	if z.kind == Finite && w.IsZero() {
		return ONE
	}
	if z.kind == Infinite || z.IsZero() {
		sign := 0
		switch {
		case w.re > 0:
			sign = 1
		case w.re < 0:
			sign = -1
		}
		switch {
		case sign == 0:
			return NaN
		case (sign > 0) == z.IsZero():
			return ZERO
		default:
			return INF
		}
	}
	p := cmplx.Pow(complex(z.re, z.im), complex(w.re, w.im))

	return fromArith(real(p), imag(p))
}

// Sqrt returns the principal square root (Re ≥ 0). Sqrt(∞) is ∞.
func Sqrt(z Complex) Complex {
	if z.kind != Finite {
		return z
	}
	s := cmplx.Sqrt(complex(z.re, z.im))

	return fromArith(real(s), imag(s))
}

// Sin returns sin z; NaN unless z is finite.
func Sin(z Complex) Complex {
	if z.kind != Finite {
		return NaN
	}
	s := cmplx.Sin(complex(z.re, z.im))

	return fromArith(real(s), imag(s))
}

// Cos returns cos z; NaN unless z is finite.
func Cos(z Complex) Complex {
	if z.kind != Finite {
		return NaN
	}
	c := cmplx.Cos(complex(z.re, z.im))

	return fromArith(real(c), imag(c))
}
