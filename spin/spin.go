// SPDX-License-Identifier: MIT

package spin

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/qspin/cplx"
	"github.com/katalvlaran/qspin/dirac"
	"github.com/katalvlaran/qspin/matrix"
	"github.com/katalvlaran/qspin/qm"
)

// ErrNotUnitVector indicates a direction whose length is not 1.
var ErrNotUnitVector = errors.New("spin: direction is not a unit vector")

// unitTolerance bounds |n|-1 for directions accepted by Psi and Sigma.
const unitTolerance = 1e-9

// PsiLabel labels the kets returned by Psi.
const PsiLabel = "Ψ"

var h = 1 / math.Sqrt2

// Basis states.
var (
	U   = dirac.NewKetReals("u", 1, 0)
	D   = dirac.NewKetReals("d", 0, 1)
	R   = dirac.NewKetReals("r", h, h)
	L   = dirac.NewKetReals("l", h, -h)
	In  = dirac.NewKet("i", cplx.Real(h), cplx.Imag(h))
	Out = dirac.NewKet("o", cplx.Real(h), cplx.Imag(-h))
)

// Operator names used by Registry.
const (
	SigmaZName = "σ(z)"
	SigmaXName = "σ(x)"
	SigmaYName = "σ(y)"
)

// Kets returns the six basis states in the order u, d, r, l, i, o.
func Kets() []dirac.Ket { return []dirac.Ket{U, D, R, L, In, Out} }

// Registry returns a fresh registry holding σ(z), σ(x), σ(y) and the basis states.
func Registry(opts ...qm.Option) *qm.Registry {
	reg := qm.NewRegistry("Electron Spin", opts...)
	mustRegister(reg.AddOperator(SigmaZName, qm.SigmaZ()))
	mustRegister(reg.AddOperator(SigmaXName, qm.SigmaX()))
	mustRegister(reg.AddOperator(SigmaYName, qm.SigmaY()))
	for _, k := range Kets() {
		mustRegister(reg.AddState(k))
	}

	return reg
}

func mustRegister(err error) {
	if err != nil {
		panic(err)
	}
}

func checkUnit(nx, ny, nz float64) error {
	n := math.Sqrt(nx*nx + ny*ny + nz*nz)
	if !scalar.EqualWithinAbs(n, 1, unitTolerance) {
		return fmt.Errorf("(%g, %g, %g) has length %g: %w", nx, ny, nz, n, ErrNotUnitVector)
	}

	return nil
}

// Sigma returns σn = nx·σx + ny·σy + nz·σz, the spin component along n.
// Errors: ErrNotUnitVector.
func Sigma(nx, ny, nz float64) (matrix.Matrix, error) {
	if err := checkUnit(nx, ny, nz); err != nil {
		return nil, fmt.Errorf("Sigma: %w", err)
	}
	acc, err := matrix.NewZeros(2, 2)
	if err != nil {
		return nil, fmt.Errorf("Sigma: %w", err)
	}
	var sum matrix.Matrix = acc
	for _, term := range []struct {
		c  float64
		op matrix.Matrix
	}{{nx, qm.SigmaX()}, {ny, qm.SigmaY()}, {nz, qm.SigmaZ()}} {
		scaled, err := matrix.ScaleReal(term.op, term.c)
		if err != nil {
			return nil, fmt.Errorf("Sigma: %w", err)
		}
		if sum, err = matrix.Add(sum, scaled); err != nil {
			return nil, fmt.Errorf("Sigma: %w", err)
		}
	}

	return sum, nil
}

// Psi returns the +1 eigenvector of Sigma(nx, ny, nz):
//
//	ψ(n) = √((1+nz)/2) · (1, γ),  γ = (1-nz) / (nx - i·ny)
//
// Behavior highlights:
//   - n is rescaled to length 1 first, so inputs inside the unit
//     tolerance never push (1+nz)/2 outside [0, 1].
//   - On the z axis (nx = ny = 0) the limits are returned exactly:
//     |u> for +z and |d> for -z.
//   - γ evaluates with extended arithmetic; a NaN γ is replaced by 0.
//
// Errors: ErrNotUnitVector.
func Psi(nx, ny, nz float64) (dirac.Ket, error) {
	if err := checkUnit(nx, ny, nz); err != nil {
		return dirac.Ket{}, fmt.Errorf("Psi: %w", err)
	}
	if nx == 0 && ny == 0 {
		if nz > 0 {
			return dirac.NewKetReals(PsiLabel, 1, 0), nil
		}

		return dirac.NewKetReals(PsiLabel, 0, 1), nil
	}
	n := math.Sqrt(nx*nx + ny*ny + nz*nz)
	nx, ny, nz = nx/n, ny/n, nz/n

	f := math.Sqrt(math.Max(0, math.Min(1, (1+nz)/2)))
	if f == 0 {
		return dirac.NewKetReals(PsiLabel, 0, 1), nil
	}
	gamma := cplx.Real(1 - nz).Div(cplx.New(nx, -ny))
	if gamma.IsNaN() {
		gamma = cplx.ZERO
	}

	return dirac.NewKet(PsiLabel, cplx.ONE, gamma).ScaleReal(f), nil
}

// Theta returns the state prepared at angle degrees from +z towards +x:
// (cos θ/2, sin θ/2), labeled "<angle>°".
func Theta(angle float64) dirac.Ket {
	half := qm.Radians(angle) / 2

	return dirac.NewKetReals(fmt.Sprintf("%g°", angle), math.Cos(half), math.Sin(half))
}
