// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite unless a test is about INF/NaN propagation.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/qspin/cplx"
	"github.com/katalvlaran/qspin/matrix"
)

// tol is the tolerance used for floating-point algebraic laws.
const tol = 1e-9

// hide WRAPS any Matrix to hide its concrete type from type assertions,
// forcing kernels onto the At-based fallback path.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustReals builds an r×c matrix from row-major reals or fails the test.
func MustReals(tb testing.TB, r, c int, reals ...float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewFromReals(r, c, reals...)
	if err != nil {
		tb.Fatalf("NewFromReals(%d,%d): %v", r, c, err)
	}

	return m
}

// MustValues builds an r×c matrix from row-major complex values or fails the test.
func MustValues(tb testing.TB, r, c int, values ...cplx.Complex) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewFromValues(r, c, values)
	if err != nil {
		tb.Fatalf("NewFromValues(%d,%d): %v", r, c, err)
	}

	return m
}

// MustAt reads m(i,j) or fails the test.
func MustAt(tb testing.TB, m matrix.Matrix, i, j int) cplx.Complex {
	tb.Helper()
	v, err := m.At(i, j)
	if err != nil {
		tb.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RandomFill writes deterministic pseudo-random complex values in [-1,1)².
func RandomFill(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v := cplx.New(2*rng.Float64()-1, 2*rng.Float64()-1)
			if err := m.Set(i, j, v); err != nil {
				tb.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}

// RandomDense allocates and fills an r×c matrix.
func RandomDense(tb testing.TB, r, c int, seed int64) *matrix.Dense {
	tb.Helper()
	m := MustDense(tb, r, c)
	RandomFill(tb, m, seed)

	return m
}

// CompareApprox fails the test unless got and want are AllClose within tol.
func CompareApprox(tb testing.TB, want, got matrix.Matrix) {
	tb.Helper()
	ok, err := matrix.AllClose(want, got, tol)
	if err != nil {
		tb.Fatalf("AllClose: %v", err)
	}
	if !ok {
		tb.Fatalf("matrices differ:\nwant:\n%v\ngot:\n%v", want, got)
	}
}

// Pauli fixtures.
var (
	minusI = cplx.Imag(-1)
	sigmaX = func(tb testing.TB) *matrix.Dense { return MustReals(tb, 2, 2, 0, 1, 1, 0) }
	sigmaY = func(tb testing.TB) *matrix.Dense {
		return MustValues(tb, 2, 2, cplx.ZERO, minusI, cplx.I, cplx.ZERO)
	}
	sigmaZ = func(tb testing.TB) *matrix.Dense { return MustReals(tb, 2, 2, 1, 0, 0, -1) }
)
