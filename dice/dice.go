// SPDX-License-Identifier: MIT

package dice

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/qspin/cplx"
	"github.com/katalvlaran/qspin/dirac"
	"github.com/katalvlaran/qspin/matrix"
)

// ErrUnknownValue indicates a sum outside 2..12.
var ErrUnknownValue = errors.New("dice: no such sum")

// Faces is the number of faces of each die.
const Faces = 6

// PsiLabel labels the state returned by Psi.
const PsiLabel = "Ψ"

// Min and Max bound the possible sums.
const (
	Min = 2
	Max = 2 * Faces
)

// n is the dimension of the state space (one axis per sum).
const n = Max - Min + 1

// Values returns the sums 2..12.
func Values() []int {
	out := make([]int, n)
	for i := range out {
		out[i] = Min + i
	}

	return out
}

// RelativeProbabilities returns the number of face pairs per sum: 1..6..1.
func RelativeProbabilities() []int {
	out := make([]int, n)
	for i, v := range Values() {
		out[i] = Faces - abs(v-(Faces+1))
	}

	return out
}

// Amplitudes returns √(relative/36) per sum.
func Amplitudes() []float64 {
	rel := RelativeProbabilities()
	denom := math.Sqrt(float64(sum(rel)))
	out := make([]float64, n)
	for i, r := range rel {
		out[i] = math.Sqrt(float64(r)) / denom
	}

	return out
}

// Psi returns the normalised state |Ψ>.
func Psi() dirac.Ket { return dirac.NewKetReals(PsiLabel, Amplitudes()...) }

// R returns the 11×11 observable of the sum: diag(2, 3, ..., 12).
func R() *matrix.Dense {
	m := matrix.Must(matrix.NewZeros(n, n))
	for i, v := range Values() {
		if err := m.Set(i, i, cplx.Real(float64(v))); err != nil {
			panic(err)
		}
	}

	return m
}

// EigenKet returns the eigenvector |value> of R.
// Errors: ErrUnknownValue.
func EigenKet(value int) (dirac.Ket, error) {
	if value < Min || value > Max {
		return dirac.Ket{}, fmt.Errorf("EigenKet(%d): %w", value, ErrUnknownValue)
	}

	return eigenKet(value), nil
}

func eigenKet(value int) dirac.Ket {
	amps := make([]float64, n)
	amps[value-Min] = 1

	return dirac.NewKetReals(strconv.Itoa(value), amps...)
}

// EigenKets returns |2>..|12>.
func EigenKets() []dirac.Ket {
	out := make([]dirac.Ket, n)
	for i, v := range Values() {
		out[i] = eigenKet(v)
	}

	return out
}

// Expectation returns <Ψ|R|Ψ>.
func Expectation() (float64, error) {
	e, err := dirac.Expectation(R(), Psi())
	if err != nil {
		return 0, fmt.Errorf("Expectation: %w", err)
	}

	return e.Re(), nil
}

// Variance returns <Ψ|R²|Ψ> - <Ψ|R|Ψ>².
func Variance() (float64, error) {
	r := R()
	r2, err := matrix.Mul(r, r)
	if err != nil {
		return 0, fmt.Errorf("Variance: %w", err)
	}
	e2, err := dirac.Expectation(r2, Psi())
	if err != nil {
		return 0, fmt.Errorf("Variance: %w", err)
	}
	mean, err := Expectation()
	if err != nil {
		return 0, fmt.Errorf("Variance: %w", err)
	}

	return e2.Re() - mean*mean, nil
}

func weighted() (xs, ws []float64) {
	vals, rel := Values(), RelativeProbabilities()
	xs, ws = make([]float64, n), make([]float64, n)
	for i := range vals {
		xs[i], ws[i] = float64(vals[i]), float64(rel[i])
	}

	return xs, ws
}

// ClassicalMean returns the frequency-weighted mean of the sums.
func ClassicalMean() float64 {
	xs, ws := weighted()

	return stat.Mean(xs, ws)
}

// ClassicalVariance returns the frequency-weighted population variance.
func ClassicalVariance() float64 {
	xs, ws := weighted()

	return stat.PopVariance(xs, ws)
}

// Row is one line of the probability table.
type Row struct {
	Value     int
	Relative  int
	Amplitude float64
	// Percent is 100·Amplitude² rounded to the nearest integer.
	Percent int
}

// Table returns one row per sum, in ascending order.
func Table() []Row {
	vals, rel, amps := Values(), RelativeProbabilities(), Amplitudes()
	out := make([]Row, n)
	for i := range out {
		out[i] = Row{
			Value:     vals[i],
			Relative:  rel[i],
			Amplitude: amps[i],
			Percent:   int(math.Round(100 * amps[i] * amps[i])),
		}
	}

	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

func sum(xs []int) int {
	var s int
	for _, x := range xs {
		s += x
	}

	return s
}
