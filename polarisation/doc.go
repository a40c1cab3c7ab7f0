// Package polarisation models the polarisation of a photon.
//
// What & Why:
//
//	Linear polarisation states are |x>, |y> and the diagonals |/> and |\>;
//	circular states are clockwise |↻> and anti-clockwise |↺>. The
//	observables H+, Hx and H* share their matrices with σz, σx and σy.
//	A polariser at angle θ is the observable H(θ), whose +1 eigenvector
//	is the linear state Theta(θ).
//
// Example:
//
//	p, _ := qm.ProbabilityOf(polarisation.Theta(60), polarisation.Theta(30))
//	fmt.Println(p) // 0.75
package polarisation
