// Package spin models the spin of an electron as a two-level system.
//
// What & Why:
//
//	The six textbook basis states are spin up/down along z (|u>, |d>),
//	right/left along x (|r>, |l>) and in/out along y (|i>, |o>). The
//	components of spin are measured by the Pauli operators σz, σx and σy;
//	a measurement along an arbitrary unit direction n uses
//	σn = nx·σx + ny·σy + nz·σz, whose +1 eigenvector is Psi(n).
//
// Key features:
//
//   - Basis kets U, D, R, L, In, Out and a Registry with σ(z), σ(x), σ(y).
//   - Sigma(nx, ny, nz) and its eigenvector Psi(nx, ny, nz).
//   - Theta(angle): the state prepared at angle θ from z in the x-z plane.
//
// Example:
//
//	res, _ := spin.Registry().Run("σ(z)|u>")
//	fmt.Println(res) // σ(z)|u> = u
package spin
