// Package matrix provides dense complex matrices and their algebra.
//
// What & Why:
//
//	A Matrix is a rows×cols grid (both ≥ 1, fixed at construction) of
//	cplx.Complex values. *Dense is the row-major implementation. All
//	algebra is exposed as free functions that validate their operands,
//	allocate a fresh result and never mutate inputs, so matrices behave as
//	immutable values once built.
//
// Key features:
//
//   - Mul, Add, Sub, Scale, Apply with ErrDimensionMismatch on bad shapes.
//   - Transpose and Conj as separate operations; ConjTranspose composes both.
//   - Determinant and Inverse in closed form for 2×2 (ErrUnsupportedShape
//     otherwise, ErrSingular on a zero determinant).
//   - IsHermitian / IsUnitary predicates with a configurable epsilon.
//   - Column extraction for n×1 results (ErrInvalidCast otherwise).
//
// Errors:
//
//	All failures are sentinels from errors.go wrapped with the operation
//	name; match them with errors.Is.
//
// Example:
//
//	sy := matrix.Must(matrix.NewFromValues(2, 2, []cplx.Complex{cplx.ZERO, cplx.I.Neg(), cplx.I, cplx.ZERO}))
//	fmt.Println(matrix.IsHermitian(sy), matrix.IsUnitary(sy)) // true true
package matrix
