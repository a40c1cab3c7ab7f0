// Package qm provides the shared quantum-mechanics tooling of the models:
// the Pauli operators, eigenvalue experiments and named registries.
//
// What & Why:
//
//	An experiment applies a Hermitian operator to a prepared state. When
//	the resultant ket equals the state (within epsilon) the state is an
//	eigenvector with eigenvalue +1; when it equals the negated state the
//	eigenvalue is -1. Anything else is reported with a NaN eigenvalue and
//	the resultant ket.
//
//	A Registry names operators ("σ(z)") and states ("u") so experiments
//	can be written as the expressions found in textbooks: "σ(z)|u>".
//
// Key features:
//
//   - SigmaX / SigmaY / SigmaZ return fresh copies of constants built once.
//   - Experiment and ProbabilityOf over dirac kets.
//   - Registry.Run parses and evaluates "<operator>|<state>>" expressions.
//   - Radians / Degrees angle conversions.
//
// Concurrency:
//
//	Registry is guarded by a sync.RWMutex; Run may be called from many
//	goroutines while operators and states are being added.
//
// Example:
//
//	reg := spin.Registry()
//	res, _ := reg.Run("σ(x)|u>")
//	fmt.Println(res) // σ(x)|u> = d
package qm
