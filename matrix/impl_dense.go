// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce the numeric policy (optional rejection of cplx.NaN) from a single source of truth.
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot algebra (see impl_linear_algebra.go): operate on the flat data slice directly.
//   - Algebra never mutates its operands; Set exists for builders and tests.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); String: O(r*c).

package matrix

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/katalvlaran/qspin/cplx"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both ≥ 1 and fixed at construction.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - allowUndefined relaxes the NaN guard in Set.
type Dense struct {
	r, c           int            // row and column counts
	data           []cplx.Complex // contiguous row-major storage (len == r*c)
	allowUndefined bool           // numeric guard: accept cplx.NaN in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer (cplx zero value is ZERO).
//   - Stage 3: resolve numeric policy from opts.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]cplx.Complex, rows*cols),
		allowUndefined: o.allowUndefined,
	}, nil
}

// newResult allocates a kernel output; shapes are pre-validated by callers,
// so dimensions are always positive here.
func newResult(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]cplx.Complex, rows*cols), allowUndefined: true}
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (int, int) { return m.r, m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (cplx.Complex, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return cplx.ZERO, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Implementation:
//   - Stage 1: bounds check via indexOf.
//   - Stage 2: reject cplx.NaN unless the matrix allows undefined values.
//   - Stage 3: write into data slice.
//
// Errors:
//   - ErrOutOfRange, ErrUndefined (both wrapped with coordinates).
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v cplx.Complex) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if v.IsNaN() && !m.allowUndefined {
		return denseErrorf(ctxSet, row, col, ErrUndefined)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix, policy included.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.clone()
}

func (m *Dense) clone() *Dense {
	cp := make([]cplx.Complex, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, allowUndefined: m.allowUndefined}
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange.
func (m *Dense) Row(i int) ([]cplx.Complex, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]cplx.Complex, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// String implements fmt.Stringer: one bracketed row per line.
//
//	[0, -i]
//	[i, 0]
//
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			sb.WriteString(m.data[i*m.c+j].String())
			if j < m.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// Fprint writes m to w, right-aligning every cell to width display columns.
// formatFn renders a cell; nil means cplx.Complex.String. Width is measured
// in terminal cells, so "∞" counts as one.
//
// Errors:
//   - ErrNilMatrix, or any error from w / At.
//
// Complexity: O(r*c).
func Fprint(w io.Writer, m Matrix, width int, formatFn func(cplx.Complex) string) error {
	if err := ValidateNotNil(m); err != nil {
		return fmt.Errorf("Fprint: %w", err)
	}
	if formatFn == nil {
		formatFn = cplx.Complex.String
	}

	var sb strings.Builder
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		sb.Reset()
		for j = 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return fmt.Errorf("Fprint: %w", err)
			}
			sb.WriteString(runewidth.FillLeft(formatFn(v), width))
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return fmt.Errorf("Fprint: %w", err)
		}
	}

	return nil
}
