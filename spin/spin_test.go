// Package spin_test verifies the electron-spin model.
package spin_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qspin/cplx"
	"github.com/katalvlaran/qspin/dirac"
	"github.com/katalvlaran/qspin/matrix"
	"github.com/katalvlaran/qspin/qm"
	"github.com/katalvlaran/qspin/spin"
)

const eps = 1e-12

func TestKets_AreNormalised(t *testing.T) {
	for _, k := range spin.Kets() {
		t.Run(k.Label, func(t *testing.T) {
			require.InDelta(t, 1, k.Norm(), eps)
			p, err := qm.ProbabilityOf(k, k)
			require.NoError(t, err)
			require.Equal(t, 1.0, p)
		})
	}
}

func TestProbabilityTable(t *testing.T) {
	for _, tc := range []struct {
		outcome, prepare dirac.Ket
		want             float64
	}{
		{spin.U, spin.D, 0},
		{spin.D, spin.U, 0},
		{spin.R, spin.U, 0.5},
		{spin.R, spin.D, 0.5},
		{spin.R, spin.L, 0},
		{spin.L, spin.R, 0},
		{spin.L, spin.U, 0.5},
		{spin.L, spin.D, 0.5},
		{spin.In, spin.U, 0.5},
		{spin.Out, spin.U, 0.5},
		{spin.In, spin.R, 0.25},
	} {
		t.Run("<"+tc.outcome.Label+"|"+tc.prepare.Label+">", func(t *testing.T) {
			p, err := qm.ProbabilityOf(tc.prepare, tc.outcome)
			require.NoError(t, err)
			assert.Equal(t, tc.want, p)
		})
	}
}

func TestCircularStates_BornRule(t *testing.T) {
	for _, tc := range []struct {
		bra  dirac.Bra
		ket  dirac.Ket
		want float64
	}{
		{spin.In.ToBra(), spin.Out, 0},
		{spin.Out.ToBra(), spin.In, 0},
		{spin.In.ToBra(), spin.D, 0.5},
		{spin.Out.ToBra(), spin.L, 0.5},
	} {
		p, err := dirac.BornProbability(tc.bra, tc.ket)
		require.NoError(t, err)
		assert.Equal(t, tc.want, p, "<%s|%s>", tc.bra.Label, tc.ket.Label)
	}
}

func TestRegistry_Experiments(t *testing.T) {
	reg := spin.Registry()
	require.Equal(t, "Electron Spin", reg.Name())
	for _, tc := range []struct {
		expr  string
		name  string
		eigen float64
	}{
		{"σ(z)|u>", "u", 1},
		{"σ(z)|d>", "d", -1},
		{"σ(x)|r>", "r", 1},
		{"σ(x)|l>", "l", -1},
		{"σ(y)|i>", "i", 1},
		{"σ(y)|o>", "o", -1},
		{"σ(x)|u>", "d", math.NaN()},
		{"σ(x)|d>", "u", math.NaN()},
		{"σ(y)|u>", "", math.NaN()},
		{"σ(y)|d>", "", math.NaN()},
	} {
		t.Run(tc.expr, func(t *testing.T) {
			res, err := reg.Run(tc.expr)
			require.NoError(t, err)
			assert.Equal(t, tc.name, res.Name)
			if math.IsNaN(tc.eigen) {
				assert.False(t, res.Outcome.IsEigen())
			} else {
				assert.Equal(t, tc.eigen, res.Outcome.Eigenvalue)
			}
		})
	}
}

func TestSigma_Axes(t *testing.T) {
	for _, tc := range []struct {
		name       string
		nx, ny, nz float64
		want       matrix.Matrix
	}{
		{"x", 1, 0, 0, qm.SigmaX()},
		{"y", 0, 1, 0, qm.SigmaY()},
		{"z", 0, 0, 1, qm.SigmaZ()},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := spin.Sigma(tc.nx, tc.ny, tc.nz)
			require.NoError(t, err)
			require.True(t, matrix.Equal(tc.want, got), "got\n%v", got)
		})
	}
}

func TestSigma_IsObservable(t *testing.T) {
	s, err := spin.Sigma(0.6, 0, 0.8)
	require.NoError(t, err)
	require.True(t, matrix.IsHermitian(s))
	require.True(t, matrix.IsUnitary(s))

	_, err = spin.Sigma(1, 1, 0)
	require.ErrorIs(t, err, spin.ErrNotUnitVector)
}

func TestPsi_MatchesBasis(t *testing.T) {
	for _, tc := range []struct {
		name       string
		nx, ny, nz float64
		want       dirac.Ket
	}{
		{"x", 1, 0, 0, spin.R},
		{"y", 0, 1, 0, spin.In},
		{"z", 0, 0, 1, spin.U},
		{"-x", -1, 0, 0, spin.L},
		{"-y", 0, -1, 0, spin.Out},
		{"-z", 0, 0, -1, spin.D},
	} {
		t.Run(tc.name, func(t *testing.T) {
			psi, err := spin.Psi(tc.nx, tc.ny, tc.nz)
			require.NoError(t, err)
			require.Equal(t, spin.PsiLabel, psi.Label)
			require.True(t, psi.ApproxEqual(tc.want, eps), "got %v want %v", psi, tc.want)
		})
	}
}

func TestPsi_IsEigenvectorOfSigma(t *testing.T) {
	for _, n := range [][3]float64{
		{0.6, 0, 0.8},
		{0, -0.8, 0.6},
		{0.48, 0.64, 0.6},
		{1 / math.Sqrt(3), 1 / math.Sqrt(3), -1 / math.Sqrt(3)},
	} {
		psi, err := spin.Psi(n[0], n[1], n[2])
		require.NoError(t, err)
		require.InDelta(t, 1, psi.Norm(), eps)

		sn, err := spin.Sigma(n[0], n[1], n[2])
		require.NoError(t, err)
		out, err := qm.Experiment(sn, psi)
		require.NoError(t, err)
		require.Equal(t, 1.0, out.Eigenvalue, "n=%v", n)
	}
}

func TestPsi_NearPoles(t *testing.T) {
	for _, tc := range []struct {
		name       string
		nx, ny, nz float64
		want       dirac.Ket
		tol        float64
	}{
		{"-z long", 0, 0, -1 - 5e-10, spin.D, eps},
		{"-z short", 0, 0, -1 + 5e-10, spin.D, eps},
		{"+z long", 0, 0, 1 + 5e-10, spin.U, eps},
		{"+z short", 0, 0, 1 - 5e-10, spin.U, eps},
		{"-z tilted", 1e-3, 0, -math.Sqrt(1 - 1e-6), spin.D, 1e-3},
		{"-z tilted, rescaled", 0, 1e-3, -math.Sqrt(1-1e-6) - 5e-10, dirac.NewKet("", cplx.ZERO, cplx.I), 1e-3},
	} {
		t.Run(tc.name, func(t *testing.T) {
			psi, err := spin.Psi(tc.nx, tc.ny, tc.nz)
			require.NoError(t, err)
			for _, v := range psi.Values() {
				require.True(t, v.IsFinite(), "got %v", psi)
			}
			require.InDelta(t, 1, psi.Norm(), 1e-6)
			require.True(t, psi.ApproxEqual(tc.want, tc.tol), "got %v want %v", psi, tc.want)
		})
	}
}

func TestPsi_RejectsNonUnit(t *testing.T) {
	_, err := spin.Psi(0, 0, 0)
	require.ErrorIs(t, err, spin.ErrNotUnitVector)
	_, err = spin.Psi(0.5, 0.5, 0.5)
	require.ErrorIs(t, err, spin.ErrNotUnitVector)
	_, err = spin.Psi(0, 0, -1-2e-9)
	require.ErrorIs(t, err, spin.ErrNotUnitVector)
}

func TestTheta(t *testing.T) {
	require.True(t, spin.Theta(0).ApproxEqual(spin.U, eps))
	require.True(t, spin.Theta(180).ApproxEqual(spin.D, eps))
	require.True(t, spin.Theta(90).ApproxEqual(spin.R, eps))
	require.Equal(t, "45°", spin.Theta(45).Label)

	p, err := qm.ProbabilityOf(spin.Theta(45), spin.U)
	require.NoError(t, err)
	require.Equal(t, 0.85, p)
	p, err = qm.ProbabilityOf(spin.Theta(0), spin.Theta(0))
	require.NoError(t, err)
	require.Equal(t, 1.0, p)
}
