// SPDX-License-Identifier: MIT
// Package matrix - constructors and thin facades.
//
// Purpose:
//   - Provide intention-revealing entry points for building matrices from
//     literals (row-major values, reals, rows, columns) and neutral elements.
//   - Every constructor funnels through NewDense.
//
// AI-Hints:
//   - Use Must for package-level constants (operators built once at init).
//   - Use NewColumn to turn a vector into the n×1 operand of Mul.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/qspin/cplx"
)

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n: cplx.ONE on the diagonal, cplx.ZERO elsewhere.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	id, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("NewIdentity: %w", err)
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = cplx.ONE
	}

	return id, nil
}

// NewFromValues builds an r×c matrix from row-major values.
// Errors:
//   - ErrInvalidDimensions (r or c ≤ 0),
//   - ErrDimensionMismatch (len(values) != r*c),
//   - ErrUndefined (a NaN value without WithAllowUndefined).
//
// Complexity: O(r*c).
func NewFromValues(rows, cols int, values []cplx.Complex, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewFromValues: %w", err)
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("NewFromValues: %d values for %dx%d: %w", len(values), rows, cols, ErrDimensionMismatch)
	}
	for idx, v := range values {
		if err = m.Set(idx/cols, idx%cols, v); err != nil {
			return nil, fmt.Errorf("NewFromValues: %w", err)
		}
	}

	return m, nil
}

// NewFromReals builds an r×c matrix from row-major real values.
// Errors: as NewFromValues (NaN inputs map to cplx.NaN).
func NewFromReals(rows, cols int, reals ...float64) (*Dense, error) {
	values := make([]cplx.Complex, len(reals))
	for i, x := range reals {
		values[i] = cplx.Real(x)
	}

	return NewFromValues(rows, cols, values)
}

// NewFromRows builds a matrix from a slice of equally long rows.
// Errors:
//   - ErrInvalidDimensions (no rows or empty first row),
//   - ErrDimensionMismatch (ragged rows).
func NewFromRows(rows [][]cplx.Complex, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("NewFromRows: %w", ErrInvalidDimensions)
	}
	cols := len(rows[0])
	values := make([]cplx.Complex, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("NewFromRows: row %d has %d values, want %d: %w", i, len(row), cols, ErrDimensionMismatch)
		}
		values = append(values, row...)
	}

	return NewFromValues(len(rows), cols, values, opts...)
}

// NewColumn builds the n×1 column matrix of values.
// Errors: ErrInvalidDimensions when values is empty.
func NewColumn(values ...cplx.Complex) (*Dense, error) {
	m, err := NewFromValues(len(values), 1, values, WithAllowUndefined())
	if err != nil {
		return nil, fmt.Errorf("NewColumn: %w", err)
	}

	return m, nil
}

// Column returns the values of a single-column matrix, top to bottom.
// Errors: ErrNilMatrix, ErrInvalidCast (Cols != 1).
func Column(m Matrix) ([]cplx.Complex, error) {
	if err := ValidateColumn(m); err != nil {
		return nil, fmt.Errorf("Column: %w", err)
	}
	out := make([]cplx.Complex, m.Rows())
	if d, ok := m.(*Dense); ok {
		copy(out, d.data)

		return out, nil
	}
	for i := range out {
		v, err := m.At(i, 0)
		if err != nil {
			return nil, fmt.Errorf("Column: %w", err)
		}
		out[i] = v
	}

	return out, nil
}

// Must returns m or panics with err. It is meant for package-level
// literals whose shape is fixed in source.
func Must(m *Dense, err error) *Dense {
	if err != nil {
		panic(err)
	}

	return m
}

// CloneMatrix returns a structural clone of m.
// Thin wrapper over Matrix.Clone for API discoverability; nil stays nil.
func CloneMatrix(m Matrix) Matrix {
	if ValidateNotNil(m) != nil {
		return nil
	}

	return m.Clone()
}
