// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/qspin/cplx"
	"github.com/katalvlaran/qspin/dice"
	"github.com/katalvlaran/qspin/dirac"
	"github.com/katalvlaran/qspin/internal/config"
	"github.com/katalvlaran/qspin/matrix"
	"github.com/katalvlaran/qspin/polarisation"
	"github.com/katalvlaran/qspin/qm"
	"github.com/katalvlaran/qspin/spin"
)

type demoFunc func(w io.Writer, cfg *config.Config) error

var demos = map[string]demoFunc{
	config.DemoAlgebra:      runAlgebra,
	config.DemoSpin:         runSpin,
	config.DemoPolarisation: runPolarisation,
	config.DemoDice:         runDice,
}

// Lipgloss styles used by the traces.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff9e64"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7aa2f7"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))

	tableBorderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#9ece6a"))
)

// trace writes a demo transcript and keeps the first write error.
type trace struct {
	w    io.Writer
	snap float64
	eps  float64
	err  error
}

func newTrace(w io.Writer, cfg *config.Config) *trace {
	return &trace{w: w, snap: cfg.Snap, eps: cfg.Epsilon}
}

func (t *trace) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func (t *trace) title(s string)   { t.printf("%s\n\n", titleStyle.Render(s)) }
func (t *trace) section(s string) { t.printf("\n%s\n", sectionStyle.Render(s)) }
func (t *trace) note(s string)    { t.printf("%s\n", dimStyle.Render(s)) }

// c formats a complex value after snapping rounding noise to zero.
func (t *trace) c(z cplx.Complex) string { return z.Snap(t.snap).String() }

// ket returns k with every amplitude snapped.
func (t *trace) ket(k dirac.Ket) dirac.Ket {
	vals := k.Values()
	for i := range vals {
		vals[i] = vals[i].Snap(t.snap)
	}

	return dirac.NewKet(k.Label, vals...)
}

func (t *trace) braket(k dirac.Ket) {
	s := t.ket(k)
	t.printf("%s\n%s\n", s, s.ToBra())
}

func (t *trace) matrix(name string, m matrix.Matrix, width int, formatFn func(cplx.Complex) string) {
	if t.err != nil {
		return
	}
	t.printf("%s =\n", name)
	if formatFn == nil {
		formatFn = t.c
	}
	snapped, err := matrix.Snap(m, t.snap)
	if err != nil {
		t.err = err
		return
	}
	t.err = matrix.Fprint(t.w, snapped, width, formatFn)
}

func (t *trace) probability(prepare, outcome dirac.Ket) {
	if t.err != nil {
		return
	}
	p, err := qm.ProbabilityOf(prepare, outcome)
	if err != nil {
		t.err = err
		return
	}
	t.printf("[<%s|%s>]² = %.2f\n", outcome.Label, prepare.Label, p)
}

func (t *trace) born(prepare, outcome dirac.Ket) {
	if t.err != nil {
		return
	}
	p, err := dirac.BornProbability(outcome.ToBra(), prepare)
	if err != nil {
		t.err = err
		return
	}
	t.printf("|<%s|%s>|² = %.2f\n", outcome.Label, prepare.Label, p)
}

func (t *trace) experiments(reg *qm.Registry, exprs ...string) {
	for _, expr := range exprs {
		if t.err != nil {
			return
		}
		res, err := reg.Run(expr)
		if err != nil {
			t.err = err
			return
		}
		if res.Name == "" {
			res.Outcome.State = t.ket(res.Outcome.State)
		}
		t.printf("%s\n", res)
	}
}

func realInt(z cplx.Complex) string {
	if z.IsReal() {
		return strconv.FormatFloat(z.Re(), 'f', -1, 64)
	}

	return z.String()
}

// ---------- algebra ----------

func runAlgebra(w io.Writer, cfg *config.Config) error {
	t := newTrace(w, cfg)
	t.title("Extended complex numbers and matrices")

	z, err := cplx.Parse("4+3i")
	if err != nil {
		return err
	}
	v := cplx.MustParse("2-i")
	t.section("Arithmetic")
	t.printf("z = %s, w = %s\n", z, v)
	t.printf("z+w = %s  z-w = %s  z·w = %s  z/w = %s\n", z.Add(v), z.Sub(v), z.Mul(v), t.c(z.Div(v)))
	t.printf("|z| = %g  conj(z) = %s  √(-4) = %s\n", z.Mod(), z.Conj(), t.c(cplx.Sqrt(cplx.Real(-4))))

	t.section("Limits")
	for _, op := range []struct {
		expr string
		val  cplx.Complex
	}{
		{"1/0", cplx.ONE.Div(cplx.ZERO)},
		{"1/∞", cplx.ONE.Div(cplx.INF)},
		{"0/0", cplx.ZERO.Div(cplx.ZERO)},
		{"∞/∞", cplx.INF.Div(cplx.INF)},
		{"∞·0", cplx.INF.Mul(cplx.ZERO)},
		{"ln 0", cplx.Ln(cplx.ZERO)},
	} {
		t.printf("%-4s = %s\n", op.expr, op.val)
	}

	t.section("Pauli operators")
	for _, p := range []struct {
		name string
		m    matrix.Matrix
	}{{"σx", qm.SigmaX()}, {"σy", qm.SigmaY()}, {"σz", qm.SigmaZ()}} {
		t.matrix(p.name, p.m, 4, nil)
		t.printf("hermitian=%t unitary=%t\n", matrix.IsHermitian(p.m, matrix.WithEpsilon(t.eps)), matrix.IsUnitary(p.m, matrix.WithEpsilon(t.eps)))
	}

	t.section("2×2 inverse")
	m := matrix.Must(matrix.NewFromReals(2, 2, 4, 7, 2, 6))
	inv, err := matrix.Inverse(m)
	if err != nil {
		return err
	}
	t.matrix("M", m, 4, realInt)
	t.matrix("M⁻¹", inv, 6, nil)
	prod, err := matrix.Mul(m, inv)
	if err != nil {
		return err
	}
	t.matrix("M·M⁻¹", prod, 4, nil)

	singular := matrix.Must(matrix.NewFromReals(2, 2, -6, 9, 2, -3))
	if _, err = matrix.Inverse(singular); err != nil {
		t.note("[[-6, 9], [2, -3]]⁻¹: " + err.Error())
	}

	return t.err
}

// ---------- spin ----------

func runSpin(w io.Writer, cfg *config.Config) error {
	t := newTrace(w, cfg)
	t.title("Quantum Mechanics - Electron Spin")

	for _, k := range spin.Kets() {
		t.braket(k)
	}

	t.section("Probabilities")
	kets := spin.Kets()
	for _, outcome := range kets {
		for _, prepare := range kets {
			t.probability(prepare, outcome)
		}
	}

	t.section("Experiments")
	reg := spin.Registry(matrix.WithEpsilon(t.eps))
	t.experiments(reg, "σ(z)|u>", "σ(z)|d>", "σ(x)|r>", "σ(x)|l>", "σ(y)|i>", "σ(y)|o>", "σ(x)|u>", "σ(x)|d>")
	t.note("Not eigenvectors:")
	t.experiments(reg, "σ(y)|u>", "σ(y)|d>")

	t.section("Spin prepared at an angle")
	t.probability(spin.Theta(45), spin.U)
	t.probability(spin.Theta(0), spin.Theta(0))
	t.probability(spin.Theta(90), spin.R)

	t.section("Generalisation")
	for _, axis := range []struct {
		name       string
		nx, ny, nz float64
	}{{"σn(x)", 1, 0, 0}, {"σn(y)", 0, 1, 0}, {"σn(z)", 0, 0, 1}} {
		sn, err := spin.Sigma(axis.nx, axis.ny, axis.nz)
		if err != nil {
			return err
		}
		t.matrix(axis.name, sn, 5, nil)
	}
	t.printf("\n")
	for _, c := range []struct {
		basis      dirac.Ket
		axis       string
		nx, ny, nz float64
	}{
		{spin.R, "x", 1, 0, 0}, {spin.In, "y", 0, 1, 0}, {spin.U, "z", 0, 0, 1},
		{spin.L, "-x", -1, 0, 0}, {spin.Out, "-y", 0, -1, 0}, {spin.D, "-z", 0, 0, -1},
	} {
		psi, err := spin.Psi(c.nx, c.ny, c.nz)
		if err != nil {
			return err
		}
		t.printf("|%s> =%s", c.basis.Label, t.ket(c.basis).Indented(7, true))
		t.printf("%s(%s) =%s", spin.PsiLabel, c.axis, t.ket(psi).Indented(7, true))
	}

	return t.err
}

// ---------- polarisation ----------

func runPolarisation(w io.Writer, cfg *config.Config) error {
	t := newTrace(w, cfg)
	t.title("Quantum Mechanics - Light Polarisation")

	for _, k := range polarisation.Linear() {
		t.braket(k)
	}

	reg := polarisation.Registry(matrix.WithEpsilon(t.eps))
	t.section("Primary operators")
	for _, name := range reg.Operators() {
		op, err := reg.Operator(name)
		if err != nil {
			return err
		}
		t.matrix(name, op, 4, realInt)
	}

	x, y := polarisation.X, polarisation.Y
	f, b := polarisation.Forward, polarisation.Back
	th := polarisation.Theta

	t.section("Probabilities")
	for _, pair := range [][2]dirac.Ket{{x, x}, {x, y}, {x, f}, {x, b}, {f, b}, {f, x}, {b, y}} {
		t.probability(pair[0], pair[1])
	}

	t.section("Experiments")
	t.experiments(reg, "H+|x>", "H+|y>", "Hx|/>", `Hx|\>`)

	t.section("Polariser at an angle")
	for _, pair := range [][2]dirac.Ket{
		{th(45), th(45)}, {th(135), th(45)}, {x, th(45)}, {y, th(135)},
		{th(60), th(30)}, {th(0), th(90)}, {th(275), th(180)},
	} {
		t.probability(pair[0], pair[1])
	}
	rotated, err := dirac.Apply(polarisation.H(90), th(45))
	if err != nil {
		return err
	}
	t.printf("H(90°)%s\n", t.ket(rotated))

	t.section("Circular polarisation")
	cw, ac := polarisation.Clockwise, polarisation.AntiClockwise
	for _, pair := range [][2]dirac.Ket{{ac, cw}, {cw, ac}, {cw, cw}, {ac, ac}, {f, cw}, {cw, th(180)}} {
		t.born(pair[0], pair[1])
	}
	t.experiments(reg, "H*|↻>", "H*|↺>")

	return t.err
}

// ---------- dice ----------

func runDice(w io.Writer, cfg *config.Config) error {
	t := newTrace(w, cfg)
	t.title("Two dice")

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		Headers("v", "RP", "Ψ", "P%")
	for _, row := range dice.Table() {
		tbl.Row(
			strconv.Itoa(row.Value),
			strconv.Itoa(row.Relative),
			strconv.FormatFloat(dirac.Round(row.Amplitude, 2), 'f', 2, 64),
			strconv.Itoa(row.Percent)+"%",
		)
	}
	t.printf("%s\n", tbl.Render())

	psi := dice.Psi()
	ip, err := dirac.InnerProduct(psi.ToBra(), psi)
	if err != nil {
		return err
	}
	t.printf("\n<Ψ|Ψ> = %.4f\n", ip.Re())

	t.section("Eigenvectors")
	kets := dice.EigenKets()
	for _, k := range kets {
		t.printf("%4s = %s\n", "<"+k.Label+"|", k.ToBra())
	}
	two, six := kets[0], kets[4]
	for _, pair := range [][2]dirac.Ket{{two, two}, {two, six}} {
		ip, err = dirac.InnerProduct(pair[0].ToBra(), pair[1])
		if err != nil {
			return err
		}
		t.printf("<%s|%s> = %s\n", pair[0].Label, pair[1].Label, ip)
	}

	t.section("Observable")
	t.matrix("R", dice.R(), 3, realInt)
	e, err := dice.Expectation()
	if err != nil {
		return err
	}
	v, err := dice.Variance()
	if err != nil {
		return err
	}
	t.printf("\nExpectation value <Ψ|R|Ψ> = %.4f (classical mean %.4f)\n", e, dice.ClassicalMean())
	t.printf("Variance <Ψ|R²|Ψ> - <Ψ|R|Ψ>² = %.4f (classical %.4f)\n", v, dice.ClassicalVariance())

	return t.err
}
