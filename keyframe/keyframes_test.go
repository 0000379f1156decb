package keyframe_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wangfutao/animate.js/keyframe"
	"github.com/wangfutao/animate.js/transform"
)

// frame builds a keyframe whose transform carries its progress as an
// x-translation, so tests can tell instances apart.
func frame(t *testing.T, p float64) keyframe.Keyframe {
	t.Helper()
	tr := transform.New()
	require.NoError(t, tr.Translate(p, transform.AxisX))

	return keyframe.Keyframe{Progress: p, Transform: tr}
}

func sorted(t *testing.T, ps ...float64) *keyframe.Keyframes {
	t.Helper()
	k := &keyframe.Keyframes{}
	for _, p := range ps {
		k.Add(frame(t, p))
	}
	k.Sort()

	return k
}

func TestAddDuplicateKeepsFirst(t *testing.T) {
	k := keyframe.New()
	first := frame(t, 0.5)
	second := keyframe.Keyframe{Progress: 0.5, Transform: transform.New()}

	assert.True(t, k.Add(first))
	assert.False(t, k.Add(second), "duplicate progress must be a silent no-op")
	require.Equal(t, 1, k.Len())

	got, err := k.Get(0)
	require.NoError(t, err)
	assert.Same(t, first.Transform, got.Transform)
}

func TestNewDropsDuplicates(t *testing.T) {
	k := keyframe.New(frame(t, 1), frame(t, 2), frame(t, 1))
	assert.Equal(t, 2, k.Len())
	assert.True(t, k.Has(2))
	assert.False(t, k.Has(3))
}

func TestSortIsExplicit(t *testing.T) {
	k := keyframe.New(frame(t, 3), frame(t, 1), frame(t, 2))
	first, err := k.First()
	require.NoError(t, err)
	assert.Equal(t, 3.0, first.Progress, "insertion order until Sort is called")

	k.Sort()
	var got []float64
	for _, f := range k.All() {
		got = append(got, f.Progress)
	}
	assert.Equal(t, []float64{1, 2, 3}, got)

	last, err := k.Last()
	require.NoError(t, err)
	assert.Equal(t, 3.0, last.Progress)
}

func TestGetErrors(t *testing.T) {
	var empty keyframe.Keyframes
	_, err := empty.Get(0)
	require.ErrorIs(t, err, keyframe.ErrEmpty)
	_, err = empty.First()
	require.ErrorIs(t, err, keyframe.ErrEmpty)

	k := sorted(t, 0, 1)
	_, err = k.Get(-1)
	require.ErrorIs(t, err, keyframe.ErrOutOfRange)
	_, err = k.Get(2)
	require.ErrorIs(t, err, keyframe.ErrOutOfRange)
}

func TestNearestEmpty(t *testing.T) {
	var empty keyframe.Keyframes
	got, err := empty.Nearest(1, keyframe.Round)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestNearestPolicies(t *testing.T) {
	k := sorted(t, 0, 10, 20)

	cases := []struct {
		name     string
		progress float64
		method   keyframe.Method
		want     float64
	}{
		{"round tie favours left", 5, keyframe.Round, 0},
		{"round inner tie favours left", 15, keyframe.Round, 10},
		{"round closer right", 6, keyframe.Round, 10},
		{"round closer left", 4, keyframe.Round, 0},
		{"default method is round", 5, "", 0},
		{"floor exact", 10, keyframe.Floor, 10},
		{"floor between", 19.9, keyframe.Floor, 10},
		{"ceil exact", 10, keyframe.Ceil, 10},
		{"ceil between", 10.1, keyframe.Ceil, 20},
		{"below first round", -3, keyframe.Round, 0},
		{"below first floor", -3, keyframe.Floor, 0},
		{"below first ceil", -3, keyframe.Ceil, 0},
		{"at last floor", 20, keyframe.Floor, 20},
		{"above last round", 99, keyframe.Round, 20},
		{"above last ceil", 99, keyframe.Ceil, 20},
		{"at first ceil", 0, keyframe.Ceil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := k.Nearest(tc.progress, tc.method)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tc.want, got.Progress)
		})
	}
}

func TestNearestTwoEntryTie(t *testing.T) {
	k := sorted(t, 0, 10)
	got, err := k.Nearest(5, keyframe.Round)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.Progress)
}

// TestNearestSingle checks the one-sided brackets on a single entry.
func TestNearestSingle(t *testing.T) {
	k := sorted(t, 4)
	for _, m := range []keyframe.Method{keyframe.Round, keyframe.Floor, keyframe.Ceil} {
		for _, p := range []float64{-1, 4, 9} {
			got, err := k.Nearest(p, m)
			require.NoError(t, err)
			require.NotNil(t, got, "%s %v", m, p)
			assert.Equal(t, 4.0, got.Progress)
		}
	}
}

// TestNearestMatchesLinearScan cross-checks the binary search against a
// straightforward scan on a dense grid of queries.
func TestNearestMatchesLinearScan(t *testing.T) {
	ps := []float64{0, 16, 32, 48, 64, 80, 96, 100}
	k := sorted(t, ps...)
	for q := -10.0; q <= 110; q += 0.5 {
		got, err := k.Nearest(q, keyframe.Floor)
		require.NoError(t, err)
		want := ps[0]
		for _, p := range ps {
			if p <= q {
				want = p
			}
		}
		assert.Equal(t, want, got.Progress, "floor(%v)", q)
	}
}

func TestNearestErrors(t *testing.T) {
	k := sorted(t, 0, 1)
	_, err := k.Nearest(0.5, "nearest")
	require.ErrorIs(t, err, keyframe.ErrUnknownMethod)
	_, err = k.Nearest(math.NaN(), keyframe.Round)
	require.ErrorIs(t, err, keyframe.ErrInvalidProgress)
}

func TestNearestReturnsCopy(t *testing.T) {
	k := sorted(t, 0, 1)
	got, err := k.Nearest(0, keyframe.Round)
	require.NoError(t, err)
	got.Progress = 42

	first, _ := k.First()
	assert.Equal(t, 0.0, first.Progress)
}

func TestParseMethod(t *testing.T) {
	m, err := keyframe.ParseMethod("")
	require.NoError(t, err)
	assert.Equal(t, keyframe.Round, m)
	m, err = keyframe.ParseMethod("ceil")
	require.NoError(t, err)
	assert.Equal(t, keyframe.Ceil, m)
	_, err = keyframe.ParseMethod("up")
	require.ErrorIs(t, err, keyframe.ErrUnknownMethod)
}
