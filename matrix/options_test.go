// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wangfutao/animate.js/matrix"
)

// TestWithEpsilon_Panics checks constructor validation (programmer error).
func TestWithEpsilon_Panics(t *testing.T) {
	require.Panics(t, func() { matrix.WithEpsilon(-1) })
	require.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
	require.NotPanics(t, func() { matrix.WithEpsilon(0) })
}

// TestWithEpsilon_Widens checks the tolerance actually reaches AllCloseDefault.
func TestWithEpsilon_Widens(t *testing.T) {
	a := MustFrom(t, [][]float64{{0}})
	b := MustFrom(t, [][]float64{{0.01}})

	ok, err := matrix.AllCloseDefault(a, b)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = matrix.AllCloseDefault(a, b, matrix.WithEpsilon(0.1))
	require.NoError(t, err)
	require.True(t, ok)
}
