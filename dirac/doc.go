// Package dirac provides labeled bra/ket vectors in Dirac notation.
//
// What & Why:
//
//	A Ket |ψ> is a column of complex amplitudes; its dual Bra <ψ| holds
//	the conjugated amplitudes. The inner product <φ|ψ> multiplies the
//	bra components (already conjugated) with the ket components, so it is
//	the Hermitian inner product without a second conjugation.
//
//	Labels are display metadata only: they never take part in equality.
//
// Key features:
//
//   - Ket.ToBra / Bra.ToKet (double conjugation is the identity).
//   - InnerProduct, Amplitude (real part) and the Born-rule Probability
//     rounded half-to-even to two decimals.
//   - Apply: operator-on-ket multiplication through a single-column matrix.
//
// Example:
//
//	u := dirac.NewKetReals("u", 1, 0)
//	r := dirac.NewKetReals("r", 1/math.Sqrt2, 1/math.Sqrt2)
//	a, _ := dirac.Amplitude(u.ToBra(), r)
//	fmt.Println(dirac.Probability(a)) // 0.5
package dirac
