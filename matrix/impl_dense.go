// SPDX-License-Identifier: MIT

// Package matrix - Dense: row-major storage behind every transform.
//
// Layout: element (i, j) lives at data[i*c + j]. Accessors return
// ErrOutOfRange instead of panicking, and the finite-only policy is
// checked on every write path (Set, Apply, NewDenseFrom).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	tagAt    = "At"
	tagSet   = "Set"
	tagApply = "Apply"
	tagRow   = "Row"
	tagCol   = "Col"
	tagFrom  = "NewDenseFrom"
)

// denseErrorf tags err with the method and the offending coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a fixed-shape row-major matrix.
type Dense struct {
	r, c           int
	data           []float64 // len == r*c
	validateNaNInf bool
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense returns a zero-filled rows×cols matrix with the default numeric
// policy.
//
// Errors:
//   - ErrInvalidDimensions when rows < 1 or cols < 1.
func NewDense(rows, cols int) (*Dense, error) {
	return newDense(rows, cols, DefaultValidateNaNInf)
}

// NewDenseWithOptions is NewDense with an explicit numeric policy.
func NewDenseWithOptions(rows, cols int, opts ...Option) (*Dense, error) {
	return newDense(rows, cols, gatherOptions(opts...).validateNaNInf)
}

func newDense(rows, cols int, validateNaNInf bool) (*Dense, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols), validateNaNInf: validateNaNInf}, nil
}

// NewDenseFrom copies caller rows into a new matrix; the shape is taken
// from the data. The matrix never aliases data.
//
// Implementation:
//   - Stage 1: empty input or an empty first row → ErrInvalidDimensions.
//   - Stage 2: per row, reject a length mismatch (ErrBadShape) and any
//     non-finite value (ErrNaNInf), then copy.
func NewDenseFrom(data [][]float64) (*Dense, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", tagFrom, ErrInvalidDimensions)
	}
	m, err := NewDense(len(data), len(data[0]))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tagFrom, err)
	}
	for i, row := range data {
		if len(row) != m.c {
			return nil, fmt.Errorf("%s: row %d has %d cols, want %d: %w", tagFrom, i, len(row), m.c, ErrBadShape)
		}
		for j, v := range row {
			if m.validateNaNInf && isNonFinite(v) {
				return nil, denseErrorf(tagFrom, i, j, ErrNaNInf)
			}
		}
		copy(m.data[i*m.c:], row)
	}

	return m, nil
}

// Rows is the row count.
func (m *Dense) Rows() int { return m.r }

// Cols is the column count.
func (m *Dense) Cols() int { return m.c }

// Shape is (Rows, Cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// offset maps (row, col) to the flat index, or ErrOutOfRange.
func (m *Dense) offset(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At reads (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.offset(row, col)
	if err != nil {
		return 0, denseErrorf(tagAt, row, col, err)
	}

	return m.data[off], nil
}

// Set writes v at (row, col). A write outside the shape, including to an
// absent row, is reported as ErrOutOfRange and changes nothing; callers
// that want it silent drop the error. Non-finite v fails with ErrNaNInf
// under the default policy.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.offset(row, col)
	if err != nil {
		return denseErrorf(tagSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(tagSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(tagRow, i, 0, ErrOutOfRange)
	}

	return append([]float64(nil), m.data[i*m.c:(i+1)*m.c]...), nil
}

// Col returns a copy of column j.
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(tagCol, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := range out {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Clone implements Matrix; the result is a *Dense.
func (m *Dense) Clone() Matrix { return m.CloneDense() }

// CloneDense deep-copies m, keeping its numeric policy.
func (m *Dense) CloneDense() *Dense {
	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           append([]float64(nil), m.data...),
		validateNaNInf: m.validateNaNInf,
	}
}

// String prints one bracketed row per line: "[1, 2]\n[3, 4]\n".
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.FormatFloat(m.data[i*m.c+j], 'g', -1, 64))
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// Do calls f for each element in row-major order until f returns false.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	for off, v := range m.data {
		if !f(off/m.c, off%m.c, v) {
			return
		}
	}
}

// Apply replaces every element with f(i, j, v) in row-major order.
// On ErrNaNInf it stops; elements before the failing one keep their new
// values.
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	for off, v := range m.data {
		i, j := off/m.c, off%m.c
		nv := f(i, j, v)
		if m.validateNaNInf && (math.IsNaN(nv) || math.IsInf(nv, 0)) {
			return denseErrorf(tagApply, i, j, ErrNaNInf)
		}
		m.data[off] = nv
	}

	return nil
}
