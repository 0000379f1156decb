// SPDX-License-Identifier: MIT

package transform

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/wangfutao/animate.js/matrix"
)

// Size is the fixed dimension of a homogeneous 3D transform.
const Size = 4

// Operation tags for error wrapping.
const (
	opFromMatrix = "FromMatrix"
	opMultiply   = "Multiply"
	opTranslate  = "Translate"
	opScale      = "Scale"
	opRotate     = "Rotate"
	opApply      = "Apply"
)

// transformErrorf wraps err with an operation tag.
func transformErrorf(tag string, err error) error {
	return fmt.Errorf("Transform3D.%s: %w", tag, err)
}

// checkShape requires a non-nil 4×4 operand.
func checkShape(tag string, m matrix.Matrix) error {
	err := matrix.ValidateShape(m, Size, Size)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, matrix.ErrDimensionMismatch):
		return transformErrorf(tag, fmt.Errorf("%w: %w", ErrNotTransform, err))
	}

	return transformErrorf(tag, err)
}

// Transform3D is a 4×4 homogeneous transform backed by a row-major Dense.
// It satisfies matrix.Matrix, so it composes with any Matrix of matching
// shape.
type Transform3D struct {
	m *matrix.Dense // always 4×4
}

var _ matrix.Matrix = (*Transform3D)(nil)

// New returns the identity transform.
func New() *Transform3D {
	I, _ := matrix.NewIdentity(Size) // Size > 0; cannot fail

	return &Transform3D{m: I}
}

// FromMatrix copies a 4×4 matrix into a new Transform3D.
// Any other shape fails with ErrNotTransform.
func FromMatrix(src matrix.Matrix) (*Transform3D, error) {
	if err := checkShape(opFromMatrix, src); err != nil {
		return nil, err
	}
	if t, ok := src.(*Transform3D); ok {
		return t.Copy(), nil
	}
	if d, ok := src.(*matrix.Dense); ok {
		return &Transform3D{m: d.CloneDense()}, nil
	}

	dst, _ := matrix.NewDense(Size, Size)
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			v, err := src.At(i, j)
			if err != nil {
				return nil, transformErrorf(opFromMatrix, err)
			}
			if err = dst.Set(i, j, v); err != nil {
				return nil, transformErrorf(opFromMatrix, err)
			}
		}
	}

	return &Transform3D{m: dst}, nil
}

// Rows is always 4.
func (t *Transform3D) Rows() int { return Size }

// Cols is always 4.
func (t *Transform3D) Cols() int { return Size }

// At reads element (i, j); ErrOutOfRange outside 0..3.
func (t *Transform3D) At(i, j int) (float64, error) { return t.m.At(i, j) }

// Set writes element (i, j); ErrOutOfRange outside 0..3, ErrNaNInf on non-finite v.
func (t *Transform3D) Set(i, j int, v float64) error { return t.m.Set(i, j, v) }

// Clone implements matrix.Matrix; the dynamic type is *Transform3D.
func (t *Transform3D) Clone() matrix.Matrix { return t.Copy() }

// Copy returns an independent deep copy.
func (t *Transform3D) Copy() *Transform3D {
	return &Transform3D{m: t.m.CloneDense()}
}

// Matrix returns a copy of the backing storage as a plain Dense.
func (t *Transform3D) Matrix() *matrix.Dense { return t.m.CloneDense() }

// Translate writes value into the translation column for the given axis:
// (0,3) for x, (1,3) for y, (2,3) for z. Any other axis is a no-op.
func (t *Transform3D) Translate(value float64, axis Axis) error {
	var row int
	switch axis {
	case AxisX:
		row = 0
	case AxisY:
		row = 1
	case AxisZ:
		row = 2
	default:
		return nil
	}
	if err := t.m.Set(row, 3, value); err != nil {
		return transformErrorf(opTranslate, err)
	}

	return nil
}

// Scale writes a single diagonal entry for x/y/z, or all three of
// (0,0), (1,1), (2,2) for AxisNone (uniform scale).
func (t *Transform3D) Scale(value float64, axis Axis) error {
	var cells []int
	switch axis {
	case AxisX:
		cells = []int{0}
	case AxisY:
		cells = []int{1}
	case AxisZ:
		cells = []int{2}
	default:
		cells = []int{0, 1, 2}
	}
	for _, d := range cells {
		if err := t.m.Set(d, d, value); err != nil {
			return transformErrorf(opScale, err)
		}
	}

	return nil
}

// cell is one (row, col, value) write.
type cell struct {
	i, j int
	v    float64
}

// Rotate writes a 2×2 rotation block of value radians into the plane
// orthogonal to axis. AxisNone rotates about z.
func (t *Transform3D) Rotate(value float64, axis Axis) error {
	if isNonFinite(value) {
		return transformErrorf(opRotate, matrix.ErrNaNInf)
	}
	sin, cos := math.Sincos(value)

	var cells [4]cell
	switch axis {
	case AxisX:
		cells = [4]cell{{1, 1, cos}, {2, 1, sin}, {1, 2, -sin}, {2, 2, cos}}
	case AxisY:
		cells = [4]cell{{0, 0, cos}, {2, 0, -sin}, {0, 2, sin}, {2, 2, cos}}
	default:
		cells = [4]cell{{0, 0, cos}, {1, 0, sin}, {0, 1, -sin}, {1, 1, cos}}
	}
	for _, c := range cells {
		if err := t.m.Set(c.i, c.j, c.v); err != nil {
			return transformErrorf(opRotate, err)
		}
	}

	return nil
}

// Apply dispatches a single operation by kind.
func (t *Transform3D) Apply(kind Kind, value float64, axis Axis) error {
	switch kind {
	case KindTranslate:
		return t.Translate(value, axis)
	case KindScale:
		return t.Scale(value, axis)
	case KindRotate:
		return t.Rotate(value, axis)
	}

	return transformErrorf(opApply, fmt.Errorf("%q: %w", kind, ErrUnknownKind))
}

// Multiply returns t × other as a new Transform3D; t is not modified.
// other must be 4×4 (ErrNotTransform otherwise).
func (t *Transform3D) Multiply(other matrix.Matrix) (*Transform3D, error) {
	if err := checkShape(opMultiply, other); err != nil {
		return nil, err
	}
	rhs := other
	if o, ok := other.(*Transform3D); ok {
		rhs = o.m // unwrap to hit the Dense fast-path
	}
	p, err := matrix.Mul(t.m, rhs)
	if err != nil {
		return nil, transformErrorf(opMultiply, err)
	}

	return &Transform3D{m: p}, nil
}

// ColumnMajor flattens the matrix columns-outer, rows-inner.
func (t *Transform3D) ColumnMajor() [16]float64 {
	var out [16]float64
	var k int
	for col := 0; col < Size; col++ {
		for row := 0; row < Size; row++ {
			out[k], _ = t.m.At(row, col)
			k++
		}
	}

	return out
}

// Affine2D projects the transform onto a 2D affine (a, b, c, d, e, f)
// taken from (0,0), (1,0), (0,1), (1,1), (0,3), (1,3).
func (t *Transform3D) Affine2D() [6]float64 {
	at := func(i, j int) float64 {
		v, _ := t.m.At(i, j)
		return v
	}

	return [6]float64{at(0, 0), at(1, 0), at(0, 1), at(1, 1), at(0, 3), at(1, 3)}
}

// CSS renders the transform as a CSS matrix3d() value.
func (t *Transform3D) CSS() string {
	cm := t.ColumnMajor()
	parts := make([]string, len(cm))
	for i, v := range cm {
		parts[i] = formatNumber(v)
	}

	return "matrix3d(" + strings.Join(parts, ",") + ")"
}

// CSS2D renders Affine2D as a CSS matrix() value.
func (t *Transform3D) CSS2D() string {
	a := t.Affine2D()
	parts := make([]string, len(a))
	for i, v := range a {
		parts[i] = formatNumber(v)
	}

	return "matrix(" + strings.Join(parts, ",") + ")"
}

// String is CSS.
func (t *Transform3D) String() string { return t.CSS() }

// Equal reports element-wise |t-o| ≤ tol.
func (t *Transform3D) Equal(o *Transform3D, tol float64) bool {
	if o == nil {
		return false
	}
	ok, err := matrix.AllClose(t.m, o.m, 0, tol)

	return err == nil && ok
}

// formatNumber prints the shortest round-trip representation; -0 prints as 0.
func formatNumber(v float64) string {
	if v == 0 {
		v = 0 // drop the sign of negative zero
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}

func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
