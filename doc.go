// Package qspin is a small playground for the mathematics of two-level
// quantum systems, from extended complex numbers up to spin, photon
// polarisation and a two-dice toy model.
//
// 🚀 What is qspin?
//
//	A library of value types and free-function kernels:
//		• Extended complex numbers with a point at infinity and NaN
//		• Dense complex matrices: products, adjoints, 2×2 inverses
//		• Dirac bras and kets: inner products and Born probabilities
//		• Pauli operators, eigenvalue experiments and named registries
//		• Models: electron spin, light polarisation, two dice
//
// ✨ Why choose qspin?
//
//   - Limits are values: 1/0 is ∞, 0/0 is NaN, and both flow through algebra
//   - Immutable results: kernels never mutate their operands
//   - Sentinel errors wrapped with operation context, matched with errors.Is
//
// Under the hood, everything is organized under these subpackages:
//
//	cplx/         - extended complex numbers, parsing and formatting
//	matrix/       - Matrix interface, *Dense and the linear-algebra kernels
//	dirac/        - Ket, Bra, InnerProduct, Probability, Apply
//	qm/           - Pauli operators, Experiment, Registry
//	spin/         - |u>,|d>,|r>,|l>,|i>,|o>, σn and ψ(n)
//	polarisation/ - |x>,|y>,|/>,|\>,|↻>,|↺>, H(θ)
//	dice/         - Ψ, the sum observable R and its expectation
//	cmd/qspin     - prints the computation trace of every model
//
// Quick example:
//
//	res, _ := spin.Registry().Run("σ(x)|u>")
//	fmt.Println(res) // σ(x)|u> = d
//
//	go install github.com/katalvlaran/qspin/cmd/qspin@latest
package qspin
