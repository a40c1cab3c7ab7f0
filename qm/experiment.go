// SPDX-License-Identifier: MIT

// Package qm - eigenvalue experiments and Born-rule helpers.
//
// Behavior highlights:
//   - Comparison is tolerant (matrix epsilon, default 1e-9): amplitudes such
//     as 1/√2 rarely survive a multiplication bit-exactly.
//   - A NaN Eigenvalue means "not an eigenvector"; State then holds op|ψ>.

package qm

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qspin/dirac"
	"github.com/katalvlaran/qspin/matrix"
)

// Outcome is the result of measuring an observable on a prepared state.
type Outcome struct {
	// State is the prepared state for an eigenvector, otherwise op|ψ>.
	State dirac.Ket
	// Eigenvalue is +1, -1 or NaN.
	Eigenvalue float64
}

// IsEigen reports whether the prepared state was an eigenvector of the operator.
func (o Outcome) IsEigen() bool { return !math.IsNaN(o.Eigenvalue) }

// String renders (|label> = (a, b), eigenvalue).
func (o Outcome) String() string {
	return fmt.Sprintf("(%s, %g)", o.State, o.Eigenvalue)
}

// Experiment applies op to state and classifies the result.
//
// Implementation:
//   - Stage 1: r = op|state> (dirac.Apply).
//   - Stage 2: r ≈ state → eigenvalue +1; -r ≈ state → eigenvalue -1.
//   - Stage 3: otherwise return r with a NaN eigenvalue.
//
// Errors: as dirac.Apply (matrix.ErrDimensionMismatch, matrix.ErrNilMatrix).
// Options: matrix.WithEpsilon tunes the comparison.
func Experiment(op matrix.Matrix, state dirac.Ket, opts ...matrix.Option) (Outcome, error) {
	eps := matrix.NewOptions(opts...).Epsilon()
	res, err := dirac.Apply(op, state)
	if err != nil {
		return Outcome{}, fmt.Errorf("Experiment: %w", err)
	}
	if res.ApproxEqual(state, eps) {
		return Outcome{State: state, Eigenvalue: 1}, nil
	}
	if res.Neg().ApproxEqual(state, eps) {
		return Outcome{State: state, Eigenvalue: -1}, nil
	}

	return Outcome{State: res, Eigenvalue: math.NaN()}, nil
}

// ProbabilityOf returns the probability of observing outcome after
// preparing prepare: Probability(Amplitude(<outcome|, |prepare>)).
// Errors: matrix.ErrDimensionMismatch.
func ProbabilityOf(prepare, outcome dirac.Ket) (float64, error) {
	a, err := dirac.Amplitude(outcome.ToBra(), prepare)
	if err != nil {
		return 0, fmt.Errorf("ProbabilityOf [<%s|%s>]²: %w", outcome.Label, prepare.Label, err)
	}

	return dirac.Probability(a), nil
}
