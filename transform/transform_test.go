// SPDX-License-Identifier: MIT
package transform_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wangfutao/animate.js/matrix"
	"github.com/wangfutao/animate.js/transform"
)

const tol = 1e-9

var approx = cmpopts.EquateApprox(0, tol)

// diff fails the test with a readable diff when want != got.
func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

var identity16 = [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

func TestNewIsIdentity(t *testing.T) {
	diff(t, identity16, transform.New().ColumnMajor())
}

func TestIdentityComposedWithItself(t *testing.T) {
	I := transform.New()
	p, err := I.Multiply(I)
	require.NoError(t, err)
	diff(t, identity16, p.ColumnMajor())
}

func TestTranslateX(t *testing.T) {
	tr := transform.New()
	require.NoError(t, tr.Translate(5, transform.AxisX))

	want := identity16
	want[12] = 5 // column 3, row 0
	diff(t, want, tr.ColumnMajor())
	assert.Equal(t, "matrix3d(1,0,0,0,0,1,0,0,0,0,1,0,5,0,0,1)", tr.CSS())
}

func TestTranslateUnknownAxisIsNoop(t *testing.T) {
	tr := transform.New()
	require.NoError(t, tr.Translate(5, transform.AxisNone))
	require.NoError(t, tr.Translate(5, transform.Axis("w")))
	diff(t, identity16, tr.ColumnMajor())
}

func TestScale(t *testing.T) {
	uniform := transform.New()
	require.NoError(t, uniform.Scale(2, transform.AxisNone))
	diff(t, [16]float64(mgl64.Scale3D(2, 2, 2)), uniform.ColumnMajor(), approx)

	y := transform.New()
	require.NoError(t, y.Scale(3, transform.AxisY))
	diff(t, [16]float64(mgl64.Scale3D(1, 3, 1)), y.ColumnMajor(), approx)
}

// TestRotateMatchesMathGL checks each axis against mathgl's homogeneous
// rotation builders, which use the same column-major layout.
func TestRotateMatchesMathGL(t *testing.T) {
	const a = 0.7
	cases := []struct {
		axis transform.Axis
		want mgl64.Mat4
	}{
		{transform.AxisX, mgl64.HomogRotate3DX(a)},
		{transform.AxisY, mgl64.HomogRotate3DY(a)},
		{transform.AxisZ, mgl64.HomogRotate3DZ(a)},
		{transform.AxisNone, mgl64.HomogRotate3DZ(a)},
	}
	for _, tc := range cases {
		tr := transform.New()
		require.NoError(t, tr.Rotate(a, tc.axis))
		diff(t, [16]float64(tc.want), tr.ColumnMajor(), approx)
	}
}

func TestRotateTwiceEqualsDouble(t *testing.T) {
	half := transform.New()
	require.NoError(t, half.Rotate(math.Pi/2, transform.AxisZ))
	twice, err := half.Multiply(half)
	require.NoError(t, err)

	full := transform.New()
	require.NoError(t, full.Rotate(math.Pi, transform.AxisZ))
	assert.True(t, twice.Equal(full, tol), "got %s want %s", twice, full)
}

func TestMultiplyMatchesMathGL(t *testing.T) {
	tr := transform.New()
	require.NoError(t, tr.Translate(10, transform.AxisY))
	rot := transform.New()
	require.NoError(t, rot.Rotate(0.3, transform.AxisX))
	sc := transform.New()
	require.NoError(t, sc.Scale(1.5, transform.AxisNone))

	p, err := tr.Multiply(rot)
	require.NoError(t, err)
	p, err = p.Multiply(sc)
	require.NoError(t, err)

	want := mgl64.Translate3D(0, 10, 0).Mul4(mgl64.HomogRotate3DX(0.3)).Mul4(mgl64.Scale3D(1.5, 1.5, 1.5))
	diff(t, [16]float64(want), p.ColumnMajor(), approx)
}

func TestMultiplyDoesNotMutate(t *testing.T) {
	a := transform.New()
	require.NoError(t, a.Translate(1, transform.AxisZ))
	b := transform.New()
	require.NoError(t, b.Scale(4, transform.AxisX))
	before := a.CSS()

	_, err := a.Multiply(b)
	require.NoError(t, err)
	assert.Equal(t, before, a.CSS())
}

func TestMultiplyRejectsNonTransform(t *testing.T) {
	m, err := matrix.NewDense(4, 3)
	require.NoError(t, err)
	_, err = transform.New().Multiply(m)
	require.ErrorIs(t, err, transform.ErrNotTransform)

	_, err = transform.New().Multiply(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMultiplyAcceptsDense(t *testing.T) {
	I, err := matrix.NewIdentity(4)
	require.NoError(t, err)
	require.NoError(t, I.Set(0, 3, 7))

	p, err := transform.New().Multiply(I)
	require.NoError(t, err)
	v, err := p.At(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)
}

func TestFromMatrix(t *testing.T) {
	d, err := matrix.NewIdentity(4)
	require.NoError(t, err)
	require.NoError(t, d.Set(2, 3, 9))

	tr, err := transform.FromMatrix(d)
	require.NoError(t, err)
	require.NoError(t, d.Set(2, 3, 0)) // source mutation must not leak
	v, _ := tr.At(2, 3)
	assert.Equal(t, 9.0, v)

	bad, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	_, err = transform.FromMatrix(bad)
	require.ErrorIs(t, err, transform.ErrNotTransform)
}

func TestCopyIndependence(t *testing.T) {
	a := transform.New()
	require.NoError(t, a.Translate(3, transform.AxisX))
	b := a.Copy()
	require.NoError(t, b.Translate(8, transform.AxisX))

	va, _ := a.At(0, 3)
	vb, _ := b.At(0, 3)
	assert.Equal(t, 3.0, va)
	assert.Equal(t, 8.0, vb)

	c, ok := a.Clone().(*transform.Transform3D)
	require.True(t, ok)
	assert.True(t, c.Equal(a, 0))
}

func TestAffine2D(t *testing.T) {
	tr := transform.New()
	require.NoError(t, tr.Rotate(math.Pi/2, transform.AxisZ))
	require.NoError(t, tr.Translate(4, transform.AxisX))
	require.NoError(t, tr.Translate(6, transform.AxisY))

	diff(t, [6]float64{0, 1, -1, 0, 4, 6}, tr.Affine2D(), approx)
	assert.Contains(t, tr.CSS2D(), ",4,6)")
}

func TestCSSNegativeZero(t *testing.T) {
	tr := transform.New()
	require.NoError(t, tr.Scale(math.Copysign(0, -1), transform.AxisX))
	assert.Equal(t, "matrix3d(0,0,0,0,0,1,0,0,0,0,1,0,0,0,0,1)", tr.CSS())
}

func TestNonFiniteRejected(t *testing.T) {
	tr := transform.New()
	require.ErrorIs(t, tr.Translate(math.NaN(), transform.AxisX), matrix.ErrNaNInf)
	require.ErrorIs(t, tr.Rotate(math.Inf(1), transform.AxisZ), matrix.ErrNaNInf)
	diff(t, identity16, tr.ColumnMajor())
}

func TestApplyDispatch(t *testing.T) {
	tr := transform.New()
	require.NoError(t, tr.Apply(transform.KindTranslate, 2, transform.AxisZ))
	v, _ := tr.At(2, 3)
	assert.Equal(t, 2.0, v)

	require.ErrorIs(t, tr.Apply("skew", 1, transform.AxisX), transform.ErrUnknownKind)
}

func TestParse(t *testing.T) {
	a, err := transform.ParseAxis("y")
	require.NoError(t, err)
	assert.Equal(t, transform.AxisY, a)
	_, err = transform.ParseAxis("w")
	require.ErrorIs(t, err, transform.ErrUnknownAxis)

	k, err := transform.ParseKind("rotate")
	require.NoError(t, err)
	assert.Equal(t, transform.KindRotate, k)
	_, err = transform.ParseKind("skew")
	require.ErrorIs(t, err, transform.ErrUnknownKind)
}
