// SPDX-License-Identifier: MIT

package qm

import (
	"github.com/katalvlaran/qspin/cplx"
	"github.com/katalvlaran/qspin/matrix"
)

// Process-wide Pauli constants. They are never handed out directly.
var (
	sigmaX = matrix.Must(matrix.NewFromReals(2, 2,
		0, 1,
		1, 0))
	sigmaY = matrix.Must(matrix.NewFromValues(2, 2, []cplx.Complex{
		cplx.ZERO, cplx.I.Neg(),
		cplx.I, cplx.ZERO,
	}))
	sigmaZ = matrix.Must(matrix.NewFromReals(2, 2,
		1, 0,
		0, -1))
)

// SigmaX returns a fresh copy of σx = [[0,1],[1,0]].
func SigmaX() matrix.Matrix { return sigmaX.Clone() }

// SigmaY returns a fresh copy of σy = [[0,-i],[i,0]].
func SigmaY() matrix.Matrix { return sigmaY.Clone() }

// SigmaZ returns a fresh copy of σz = [[1,0],[0,-1]].
func SigmaZ() matrix.Matrix { return sigmaZ.Clone() }
