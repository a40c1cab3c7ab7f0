// SPDX-License-Identifier: MIT

package polarisation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qspin/cplx"
	"github.com/katalvlaran/qspin/dirac"
	"github.com/katalvlaran/qspin/matrix"
	"github.com/katalvlaran/qspin/qm"
)

var h = 1 / math.Sqrt2

// Linear polarisation states.
var (
	X       = dirac.NewKetReals("x", 1, 0)
	Y       = dirac.NewKetReals("y", 0, 1)
	Forward = dirac.NewKetReals("/", h, h)
	Back    = dirac.NewKetReals(`\`, h, -h)
)

// Circular polarisation states.
var (
	Clockwise     = dirac.NewKet("↻", cplx.Real(h), cplx.Imag(h))
	AntiClockwise = dirac.NewKet("↺", cplx.Real(h), cplx.Imag(-h))
)

// Operator names used by Registry.
const (
	HPlusName  = "H+"
	HCrossName = "Hx"
	HStarName  = "H*"
)

// Linear returns x, y, /, \ in that order.
func Linear() []dirac.Ket { return []dirac.Ket{X, Y, Forward, Back} }

// Circular returns ↻, ↺.
func Circular() []dirac.Ket { return []dirac.Ket{Clockwise, AntiClockwise} }

// Registry returns a fresh registry holding H+, Hx, H* and all six states.
func Registry(opts ...qm.Option) *qm.Registry {
	reg := qm.NewRegistry("Light Polarisation", opts...)
	for _, op := range []struct {
		name string
		m    matrix.Matrix
	}{{HPlusName, qm.SigmaZ()}, {HCrossName, qm.SigmaX()}, {HStarName, qm.SigmaY()}} {
		if err := reg.AddOperator(op.name, op.m); err != nil {
			panic(err)
		}
	}
	for _, k := range append(Linear(), Circular()...) {
		if err := reg.AddState(k); err != nil {
			panic(err)
		}
	}

	return reg
}

// Theta returns the linear state at angle degrees from x: (cos θ, sin θ),
// labeled "<angle>°".
func Theta(angle float64) dirac.Ket {
	rad := qm.Radians(angle)

	return dirac.NewKetReals(fmt.Sprintf("%g°", angle), math.Cos(rad), math.Sin(rad))
}

// H returns the polariser observable at angle degrees:
//
//	[[cos 2θ,  sin 2θ],
//	 [sin 2θ, -cos 2θ]]
//
// Theta(angle) is its +1 eigenvector and Theta(angle+90) its -1 eigenvector.
func H(angle float64) *matrix.Dense {
	c, s := math.Cos(2*qm.Radians(angle)), math.Sin(2*qm.Radians(angle))

	return matrix.Must(matrix.NewFromReals(2, 2,
		c, s,
		s, -c))
}
