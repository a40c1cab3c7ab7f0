// Package dirac_test contains unit tests for bra/ket vectors.
package dirac_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qspin/cplx"
	"github.com/katalvlaran/qspin/dirac"
	"github.com/katalvlaran/qspin/matrix"
)

var (
	h = 1 / math.Sqrt(2)
	u = dirac.NewKetReals("u", 1, 0)
	d = dirac.NewKetReals("d", 0, 1)
	r = dirac.NewKetReals("r", h, h)
	l = dirac.NewKetReals("l", h, -h)
	i = dirac.NewKet("i", cplx.Real(h), cplx.Imag(h))
	o = dirac.NewKet("o", cplx.Real(h), cplx.Imag(-h))
)

func TestKet_Construction(t *testing.T) {
	src := []cplx.Complex{cplx.ONE, cplx.I}
	k := dirac.NewKet("k", src...)
	src[0] = cplx.INF
	v, err := k.At(0)
	require.NoError(t, err)
	require.True(t, v.Equal(cplx.ONE), "constructor must copy its input")

	vals := k.Values()
	vals[1] = cplx.ZERO
	v, err = k.At(1)
	require.NoError(t, err)
	require.True(t, v.Equal(cplx.I), "Values must hand out a copy")

	_, err = k.At(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Equal(t, 2, k.Len())
}

func TestLabelIsNotPartOfEquality(t *testing.T) {
	require.True(t, u.Equal(u.WithLabel("z+")))
	require.Equal(t, u.Key(), u.WithLabel("other").Key())
	require.False(t, u.Equal(d))
	require.False(t, u.Equal(dirac.NewKetReals("u3", 1, 0, 0)))
}

func TestKey_SignedZero(t *testing.T) {
	neg := dirac.NewKet("n", cplx.New(math.Copysign(0, -1), 0), cplx.ONE)
	require.True(t, neg.Equal(d), "-0 and +0 compare equal")
	require.Equal(t, dirac.NewKetReals("p", 0, 1).Key(), neg.Key())
}

func TestToBraToKet_RoundTrip(t *testing.T) {
	for _, k := range []dirac.Ket{u, d, r, l, i, o} {
		t.Run(k.Label, func(t *testing.T) {
			require.True(t, k.ToBra().ToKet().Equal(k))
			b := k.ToBra()
			require.True(t, b.ToKet().ToBra().Equal(b))
			require.Equal(t, k.Label, b.Label)
		})
	}
	b := i.ToBra()
	v, err := b.At(1)
	require.NoError(t, err)
	require.True(t, v.Equal(cplx.Imag(-h)), "bra holds conjugated amplitudes")
}

func TestScale_PreservesLabel(t *testing.T) {
	s := r.ScaleReal(2)
	require.Equal(t, "r", s.Label)
	require.True(t, s.ApproxEqual(dirac.NewKetReals("", 2*h, 2*h), 1e-15))

	c := u.Scale(cplx.I)
	require.True(t, c.Equal(dirac.NewKet("", cplx.I, cplx.ZERO)))
	require.True(t, u.Neg().Equal(dirac.NewKetReals("", -1, 0)))
}

func TestInnerProduct_Basis(t *testing.T) {
	ip, err := dirac.InnerProduct(u.ToBra(), u)
	require.NoError(t, err)
	require.True(t, ip.Equal(cplx.ONE))

	a, err := dirac.Amplitude(u.ToBra(), u)
	require.NoError(t, err)
	require.Equal(t, 1.0, a)
	require.Equal(t, 1.00, dirac.Probability(a))

	a, err = dirac.Amplitude(u.ToBra(), r)
	require.NoError(t, err)
	require.Equal(t, 0.50, dirac.Probability(a))

	a, err = dirac.Amplitude(u.ToBra(), d)
	require.NoError(t, err)
	require.Equal(t, 0.0, dirac.Probability(a))

	_, err = dirac.InnerProduct(u.ToBra(), dirac.NewKetReals("x", 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestInnerProduct_IsHermitian(t *testing.T) {
	// <i|o> = 0: orthogonal circular states.
	ip, err := dirac.InnerProduct(i.ToBra(), o)
	require.NoError(t, err)
	require.True(t, ip.ApproxEqual(cplx.ZERO, 1e-15))

	// <i|i> = 1 needs the conjugation carried by the bra.
	ip, err = dirac.InnerProduct(i.ToBra(), i)
	require.NoError(t, err)
	require.True(t, ip.ApproxEqual(cplx.ONE, 1e-15))

	// <φ|ψ> = conj(<ψ|φ>)
	ab, err := dirac.InnerProduct(i.ToBra(), r)
	require.NoError(t, err)
	ba, err := dirac.InnerProduct(r.ToBra(), i)
	require.NoError(t, err)
	require.True(t, ab.ApproxEqual(ba.Conj(), 1e-15))
}

func TestProbabilities(t *testing.T) {
	for _, tc := range []struct {
		name     string
		bra      dirac.Bra
		ket      dirac.Ket
		real     float64
		modulusq float64
	}{
		{"<r|u>", r.ToBra(), u, 0.5, 0.5},
		{"<r|l>", r.ToBra(), l, 0, 0},
		{"<i|u>", i.ToBra(), u, 0.5, 0.5},
		// complex amplitude: the real-part formula and |.|² disagree
		{"<i|d>", i.ToBra(), d, 0, 0.5},
		{"<i|r>", i.ToBra(), r, 0.25, 0.5},
	} {
		t.Run(tc.name, func(t *testing.T) {
			a, err := dirac.Amplitude(tc.bra, tc.ket)
			require.NoError(t, err)
			assert.Equal(t, tc.real, dirac.Probability(a))

			p, err := dirac.BornProbability(tc.bra, tc.ket)
			require.NoError(t, err)
			assert.Equal(t, tc.modulusq, p)
		})
	}
}

func TestRound_HalfEven(t *testing.T) {
	require.Equal(t, 0.12, dirac.Round(0.125, 2))
	require.Equal(t, 0.5, dirac.Round(0.4999999999999999, 2))
	require.Equal(t, 2.0, dirac.Round(2.5, 0))
	require.Equal(t, 4.0, dirac.Round(3.5, 0))
	require.Equal(t, -2.0, dirac.Round(-2.5, 0))
	require.Equal(t, 1200.0, dirac.Round(1250, -2))
}

func TestRound_UsesExactDecimalValue(t *testing.T) {
	for _, tc := range []struct {
		x, want float64
	}{
		// 0.005 is stored as 0.005000000000000000104...
		{0.005, 0.01},
		// 0.015 is stored as 0.01499999999999999944...
		{0.015, 0.01},
		// 0.025 is stored as 0.02500000000000000139...
		{0.025, 0.03},
		{-0.005, -0.01},
		{0.994, 0.99},
		{1, 1},
	} {
		assert.Equal(t, tc.want, dirac.Round(tc.x, 2), "Round(%v, 2)", tc.x)
	}
	require.True(t, math.IsNaN(dirac.Round(math.NaN(), 2)))
	require.True(t, math.IsInf(dirac.Round(math.Inf(1), 2), 1))
}

func TestApply(t *testing.T) {
	sx := matrix.Must(matrix.NewFromReals(2, 2, 0, 1, 1, 0))
	got, err := dirac.Apply(sx, u)
	require.NoError(t, err)
	require.True(t, got.Equal(d))
	require.Equal(t, "u", got.Label)

	_, err = dirac.Apply(sx, dirac.NewKetReals("x", 1, 0, 0))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = dirac.Apply(nil, u)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = dirac.Apply(sx, dirac.Ket{})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestColumnConversions(t *testing.T) {
	col, err := dirac.ToColumn(i)
	require.NoError(t, err)
	back, err := dirac.FromColumn(col, "i")
	require.NoError(t, err)
	require.True(t, back.Equal(i))

	_, err = dirac.FromColumn(matrix.Must(matrix.NewDense(2, 2)), "x")
	require.ErrorIs(t, err, matrix.ErrInvalidCast)
}

func TestExpectation(t *testing.T) {
	sz := matrix.Must(matrix.NewFromReals(2, 2, 1, 0, 0, -1))
	e, err := dirac.Expectation(sz, u)
	require.NoError(t, err)
	require.True(t, e.Equal(cplx.ONE))

	e, err = dirac.Expectation(sz, r)
	require.NoError(t, err)
	require.True(t, e.ApproxEqual(cplx.ZERO, 1e-15))
}

func TestNormalize(t *testing.T) {
	k, err := dirac.NewKetReals("k", 3, 4).Normalize()
	require.NoError(t, err)
	require.InDelta(t, 1, k.Norm(), 1e-15)
	require.True(t, k.ApproxEqual(dirac.NewKetReals("", 0.6, 0.8), 1e-15))

	_, err = dirac.NewKetReals("z", 0, 0).Normalize()
	require.ErrorIs(t, err, dirac.ErrZeroNorm)
	require.InDelta(t, 1, i.Norm(), 1e-15)
}

func TestStringers(t *testing.T) {
	require.Equal(t, "|u> = (1, 0)", u.String())
	require.Equal(t, "<o| = (0.5, 0.5i)", dirac.NewKet("o", cplx.Real(0.5), cplx.Imag(-0.5)).ToBra().String())
	require.Equal(t, " 1\n   0\n", u.Indented(3, true))
	require.Equal(t, "  1\n  0\n", u.Indented(2, false))
}
