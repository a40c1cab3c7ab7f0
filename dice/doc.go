// Package dice models the sum of two fair six-sided dice as a quantum state.
//
// What & Why:
//
//	The sums 2..12 occur with relative frequencies 1,2,3,4,5,6,5,4,3,2,1
//	out of 36. The state Ψ holds the square roots of the normalised
//	frequencies, so the Born rule on the eigenvector |v> of the sum
//	observable R gives back the classical probability of v. The
//	expectation <Ψ|R|Ψ> equals the classical weighted mean, 7.
//
// Key features:
//
//   - Psi, the diagonal observable R and its eigenvectors.
//   - Expectation / Variance from the state; ClassicalMean /
//     ClassicalVariance from gonum/stat for comparison.
//   - Table: one row per sum for display.
package dice
