// SPDX-License-Identifier: MIT

// Package dirac - inner products, Born-rule probabilities and operator application.
//
// Behavior highlights:
//   - InnerProduct does not conjugate: the Bra already holds conjugated values.
//   - Probability squares a real amplitude; BornProbability uses |<b|k>|²
//     and so also covers complex amplitudes.
//   - Rounding is half-to-even at two decimals, on the exact decimal value
//     of the float64 rather than on x·10^d.

package dirac

import (
	"fmt"
	"math"
	"math/big"

	"github.com/katalvlaran/qspin/cplx"
	"github.com/katalvlaran/qspin/matrix"
)

// ProbabilityDecimals is the precision of Probability and BornProbability.
const ProbabilityDecimals = 2

// InnerProduct returns <b|k> = Σ b[i]·k[i].
// Errors: matrix.ErrDimensionMismatch (different lengths).
// Complexity: O(n).
func InnerProduct(b Bra, k Ket) (cplx.Complex, error) {
	if b.Len() != k.Len() {
		return cplx.NaN, fmt.Errorf("InnerProduct <%s|%s>: %d vs %d amplitudes: %w",
			b.Label, k.Label, b.Len(), k.Len(), matrix.ErrDimensionMismatch)
	}
	acc := cplx.ZERO
	for i := range b.values {
		acc = acc.Add(b.values[i].Mul(k.values[i]))
	}

	return acc, nil
}

// Amplitude returns the real part of <b|k>, the value the probability
// formula consumes for real-valued states.
// Errors: as InnerProduct.
func Amplitude(b Bra, k Ket) (float64, error) {
	ip, err := InnerProduct(b, k)
	if err != nil {
		return 0, err
	}

	return ip.Re(), nil
}

// Round rounds x half-to-even to the given number of decimals. The tie
// check runs on the exact binary value of x, so 0.005 (stored slightly
// above the half) rounds up and 0.015 (stored below it) rounds down.
// NaN and ±Inf are returned unchanged.
func Round(x float64, decimals int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	e := decimals
	if e < 0 {
		e = -e
	}
	pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(e)), nil)

	v := new(big.Rat).SetFloat64(x)
	if decimals >= 0 {
		v.Mul(v, new(big.Rat).SetInt(pow))
	} else {
		v.Quo(v, new(big.Rat).SetInt(pow))
	}

	// q truncates towards zero; |rem| < den.
	q, rem := new(big.Int).QuoRem(v.Num(), v.Denom(), new(big.Int))
	rem.Abs(rem).Lsh(rem, 1)
	if c := rem.Cmp(v.Denom()); c > 0 || (c == 0 && q.Bit(0) == 1) {
		if x < 0 {
			q.Sub(q, big.NewInt(1))
		} else {
			q.Add(q, big.NewInt(1))
		}
	}

	var out *big.Rat
	if decimals >= 0 {
		out = new(big.Rat).SetFrac(q, pow)
	} else {
		out = new(big.Rat).SetInt(q.Mul(q, pow))
	}
	f, _ := out.Float64()

	return f
}

// Probability is the Born rule for a real amplitude: round(a·a, 2).
func Probability(amplitude float64) float64 {
	return Round(amplitude*amplitude, ProbabilityDecimals)
}

// BornProbability returns round(|<b|k>|², 2).
// Errors: as InnerProduct.
func BornProbability(b Bra, k Ket) (float64, error) {
	ip, err := InnerProduct(b, k)
	if err != nil {
		return 0, err
	}
	m := ip.Mod()

	return Round(m*m, ProbabilityDecimals), nil
}

// ToColumn returns k as an n×1 matrix.
// Errors: matrix.ErrInvalidDimensions for an empty ket.
func ToColumn(k Ket) (*matrix.Dense, error) {
	return matrix.NewColumn(k.values...)
}

// FromColumn reads an n×1 matrix back into a ket labeled label.
// Errors: matrix.ErrInvalidCast when m has more than one column.
func FromColumn(m matrix.Matrix, label string) (Ket, error) {
	vals, err := matrix.Column(m)
	if err != nil {
		return Ket{}, err
	}

	return Ket{Label: label, values: vals}, nil
}

// Apply returns op|k>: the ket is treated as a single column, multiplied,
// and read back under k's label.
// Errors: matrix.ErrDimensionMismatch (op.Cols != k.Len()), matrix.ErrNilMatrix.
func Apply(op matrix.Matrix, k Ket) (Ket, error) {
	col, err := ToColumn(k)
	if err != nil {
		return Ket{}, fmt.Errorf("Apply |%s>: %w", k.Label, err)
	}
	res, err := matrix.Mul(op, col)
	if err != nil {
		return Ket{}, fmt.Errorf("Apply |%s>: %w", k.Label, err)
	}

	return FromColumn(res, k.Label)
}

// Expectation returns <k|op|k>, the expectation value of an observable.
// Errors: as Apply and InnerProduct.
func Expectation(op matrix.Matrix, k Ket) (cplx.Complex, error) {
	applied, err := Apply(op, k)
	if err != nil {
		return cplx.NaN, err
	}

	return InnerProduct(k.ToBra(), applied)
}
