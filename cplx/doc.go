// Package cplx provides an immutable extended-complex number type.
//
// What & Why:
//
//	Complex models the extended complex plane: every value is either a
//	finite pair (re, im), the single point at infinity (INF), or an
//	undefined result (NaN) produced by an indeterminate form. The tag is
//	explicit, so the limit identities below are part of the contract rather
//	than a side effect of IEEE-754 propagation:
//
//		ONE / ZERO == INF      ONE / INF == ZERO
//		ZERO / ZERO == NaN     INF * ZERO == NaN
//		INF + INF == NaN       -INF == INF
//
// Key features:
//
//   - Arithmetic: Add, Sub, Mul, Div, Neg, Conj, Scale.
//   - Transcendental: Exp, Ln, Pow (complex exponent), Sqrt (principal branch), Sin, Cos.
//   - Parsing "4+3i"-style literals and compact formatting ("i", "-i", "2-i", "3").
//   - Value equality with signed-zero normalisation, plus a comparable Key().
//
// Complexity:
//
//	Every operation is O(1) and allocation-free.
//
// Example:
//
//	z, _ := cplx.Parse("4+3i")
//	fmt.Println(z.Mul(cplx.I))      // -3+4i
//	fmt.Println(cplx.ONE.Div(cplx.ZERO)) // ∞
package cplx
