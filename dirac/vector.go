// SPDX-License-Identifier: MIT

package dirac

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/qspin/cplx"
	"github.com/katalvlaran/qspin/matrix"
)

// amplitudes is the shared immutable storage of Ket and Bra.
// Constructors copy their input and accessors hand out copies, so a value
// never changes after construction.
type amplitudes []cplx.Complex

func (a amplitudes) at(i int) (cplx.Complex, error) {
	if i < 0 || i >= len(a) {
		return cplx.ZERO, fmt.Errorf("At(%d): %w", i, matrix.ErrOutOfRange)
	}

	return a[i], nil
}

func (a amplitudes) copyOut() []cplx.Complex {
	out := make([]cplx.Complex, len(a))
	copy(out, a)

	return out
}

func (a amplitudes) conj() amplitudes {
	out := make(amplitudes, len(a))
	for i, z := range a {
		out[i] = z.Conj()
	}

	return out
}

func (a amplitudes) scale(z cplx.Complex) amplitudes {
	out := make(amplitudes, len(a))
	for i, v := range a {
		out[i] = z.Mul(v)
	}

	return out
}

func (a amplitudes) equal(b amplitudes) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}

	return true
}

func (a amplitudes) approxEqual(b amplitudes, eps float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].ApproxEqual(b[i], eps) {
			return false
		}
	}

	return true
}

// key encodes the amplitudes exactly (hex floats), with signed zeros and
// non-finite components normalised the same way as cplx.Complex.Key.
func (a amplitudes) key() string {
	var sb strings.Builder
	for i, z := range a {
		if i > 0 {
			sb.WriteByte('|')
		}
		k := z.Key()
		sb.WriteString(strconv.Itoa(int(k.Kind)))
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatFloat(k.Re, 'x', -1, 64))
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatFloat(k.Im, 'x', -1, 64))
	}

	return sb.String()
}

func reals(xs []float64) amplitudes {
	out := make(amplitudes, len(xs))
	for i, x := range xs {
		out[i] = cplx.Real(x)
	}

	return out
}

// ---------- Ket ----------

// Ket is a labeled column vector of complex amplitudes, |Label>.
// The zero value is an empty, unlabeled ket.
type Ket struct {
	Label  string
	values amplitudes
}

// NewKet builds |label> from amplitudes (copied).
func NewKet(label string, values ...cplx.Complex) Ket {
	return Ket{Label: label, values: append(amplitudes(nil), values...)}
}

// NewKetReals builds |label> from real amplitudes.
func NewKetReals(label string, values ...float64) Ket {
	return Ket{Label: label, values: reals(values)}
}

// Len returns the number of amplitudes.
func (k Ket) Len() int { return len(k.values) }

// At returns amplitude i. Errors: matrix.ErrOutOfRange.
func (k Ket) At(i int) (cplx.Complex, error) { return k.values.at(i) }

// Values returns a copy of the amplitudes.
func (k Ket) Values() []cplx.Complex { return k.values.copyOut() }

// WithLabel returns the same amplitudes under another label.
func (k Ket) WithLabel(label string) Ket { return Ket{Label: label, values: k.values} }

// Scale multiplies every amplitude by z; the label is preserved.
func (k Ket) Scale(z cplx.Complex) Ket { return Ket{Label: k.Label, values: k.values.scale(z)} }

// ScaleReal multiplies every amplitude by a real factor; the label is preserved.
func (k Ket) ScaleReal(x float64) Ket { return k.Scale(cplx.Real(x)) }

// Neg returns −|k>.
func (k Ket) Neg() Ket { return k.ScaleReal(-1) }

// ToBra returns the dual <k|: every amplitude conjugated, label kept.
func (k Ket) ToBra() Bra { return Bra{Label: k.Label, values: k.values.conj()} }

// Equal compares amplitudes exactly (cplx.Complex.Equal); labels are ignored.
func (k Ket) Equal(o Ket) bool { return k.values.equal(o.values) }

// ApproxEqual compares amplitudes within eps; labels are ignored.
func (k Ket) ApproxEqual(o Ket, eps float64) bool { return k.values.approxEqual(o.values, eps) }

// Key returns a comparable form of the amplitudes, consistent with Equal.
func (k Ket) Key() string { return k.values.key() }

// Ket implements fmt.Stringer as |label> = (a, b, ...).
func (k Ket) String() string {
	parts := make([]string, len(k.values))
	for i, z := range k.values {
		parts[i] = z.String()
	}

	return "|" + k.Label + "> = (" + strings.Join(parts, ", ") + ")"
}

// Indented renders one amplitude per line. Every line is prefixed with
// spaces blanks except the first when excludeFirst is set, which gets a
// single blank, so the column can follow a "|x> =" caption.
func (k Ket) Indented(spaces int, excludeFirst bool) string {
	var sb strings.Builder
	pad := strings.Repeat(" ", spaces)
	for i, z := range k.values {
		if excludeFirst && i == 0 {
			sb.WriteString(" ")
		} else {
			sb.WriteString(pad)
		}
		sb.WriteString(z.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Norm returns sqrt(<k|k>).
func (k Ket) Norm() float64 {
	var sum float64
	for _, z := range k.values {
		m := z.Mod()
		sum += m * m
	}

	return math.Sqrt(sum)
}

// Normalize returns k scaled to unit norm.
// Errors: ErrZeroNorm (norm is 0, non-finite or undefined).
func (k Ket) Normalize() (Ket, error) {
	n := k.Norm()
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return Ket{}, fmt.Errorf("Normalize |%s>: %w", k.Label, ErrZeroNorm)
	}

	return k.ScaleReal(1 / n), nil
}

// ---------- Bra ----------

// Bra is a labeled row vector <Label|; its amplitudes are already conjugated.
type Bra struct {
	Label  string
	values amplitudes
}

// NewBra builds <label| from (already conjugated) amplitudes.
func NewBra(label string, values ...cplx.Complex) Bra {
	return Bra{Label: label, values: append(amplitudes(nil), values...)}
}

// NewBraReals builds <label| from real amplitudes.
func NewBraReals(label string, values ...float64) Bra {
	return Bra{Label: label, values: reals(values)}
}

// Len returns the number of amplitudes.
func (b Bra) Len() int { return len(b.values) }

// At returns amplitude i. Errors: matrix.ErrOutOfRange.
func (b Bra) At(i int) (cplx.Complex, error) { return b.values.at(i) }

// Values returns a copy of the amplitudes.
func (b Bra) Values() []cplx.Complex { return b.values.copyOut() }

// ToKet returns the dual |b>: every amplitude conjugated, label kept.
func (b Bra) ToKet() Ket { return Ket{Label: b.Label, values: b.values.conj()} }

// Equal compares amplitudes exactly; labels are ignored.
func (b Bra) Equal(o Bra) bool { return b.values.equal(o.values) }

// ApproxEqual compares amplitudes within eps; labels are ignored.
func (b Bra) ApproxEqual(o Bra, eps float64) bool { return b.values.approxEqual(o.values, eps) }

// Key returns a comparable form of the amplitudes, consistent with Equal.
func (b Bra) Key() string { return b.values.key() }

// String renders <label| = (a, b, ...).
func (b Bra) String() string {
	parts := make([]string, len(b.values))
	for i, z := range b.values {
		parts[i] = z.String()
	}

	return "<" + b.Label + "| = (" + strings.Join(parts, ", ") + ")"
}
