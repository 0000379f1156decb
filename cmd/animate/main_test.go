package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const slide = `
name = "slide"
duration_ms = 32.0
iterations = "2"
css_step = 0.1

[[rule]]
easing = "linear"
type = "translate"
direction = "x"
from = 0.0
to = 10.0
`

func writeDef(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "slide.toml")
	require.NoError(t, os.WriteFile(path, []byte(slide), 0o644))
	return path
}

func TestRunUsage(t *testing.T) {
	var out bytes.Buffer
	require.ErrorIs(t, run(context.Background(), nil, &out), errUsage)
	require.ErrorIs(t, run(context.Background(), []string{"dance"}, &out), errUsage)
	require.ErrorIs(t, run(context.Background(), []string{"css"}, &out), errUsage)
}

func TestRunCSS(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"css", writeDef(t)}, &out))

	got := out.String()
	assert.True(t, strings.HasPrefix(got, "@keyframes slide {0% { transform: "))
	assert.Equal(t, 12, strings.Count(got, "transform: matrix3d("), "eleven keyframes plus the final transform")
	assert.Contains(t, got, "animation: slide 32ms;")
	assert.Contains(t, got, "animation-iteration-count: 2;")
}

func TestRunCSSNameFlag(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"css", "-name", "other", writeDef(t)}, &out))
	assert.True(t, strings.HasPrefix(out.String(), "@keyframes other {"))
}

func TestRunSampleNearest(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"sample", "-step", "16", "-at", "20", "-method", "floor", writeDef(t)}, &out)
	require.NoError(t, err)
	assert.Equal(t, "16\tmatrix3d(1,0,0,0,0,1,0,0,0,0,1,0,5,0,0,1)\n", out.String())
}

func TestRunSampleTable(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"sample", writeDef(t)}, &out))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "PROGRESS"))
}

func TestRunExportList(t *testing.T) {
	t.Setenv("ANIMATE_DB", filepath.Join(t.TempDir(), "a.db"))
	def := writeDef(t)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"export", def}, &out))
	assert.Contains(t, out.String(), "saved slide: 11 keyframes")

	require.Error(t, run(context.Background(), []string{"export", def}, &out), "names are unique")

	out.Reset()
	require.NoError(t, run(context.Background(), []string{"list"}, &out))
	assert.Contains(t, out.String(), "slide")
}

func TestRunPlayCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	require.ErrorIs(t, run(ctx, []string{"play", writeDef(t)}, &out), context.Canceled)
}

func TestRunEasings(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"easings"}, &out))
	assert.Contains(t, out.String(), "easeOutBounce\n")
	assert.Contains(t, out.String(), "linear\n")
}
