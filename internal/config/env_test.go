package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvDefaults(t *testing.T) {
	cfg, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, Env{
		CacheSize:     64,
		CSSStep:       0.004,
		DBPath:        "animate.db",
		FrameInterval: 16 * time.Millisecond,
	}, cfg)
	assert.Len(t, cfg.Options(), 3)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ANIMATE_CACHE_SIZE", "8")
	t.Setenv("ANIMATE_CSS_STEP", "0.05")
	t.Setenv("ANIMATE_DB", "/tmp/x.db")
	t.Setenv("ANIMATE_FRAME_INTERVAL", "33ms")

	cfg, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.CacheSize)
	assert.Equal(t, 0.05, cfg.CSSStep)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.Equal(t, 33*time.Millisecond, cfg.FrameInterval)
}

func TestLoadEnvParseError(t *testing.T) {
	t.Setenv("ANIMATE_CACHE_SIZE", "many")
	_, err := LoadEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLoadEnvRangeErrors(t *testing.T) {
	cases := map[string]string{
		"ANIMATE_CACHE_SIZE":     "0",
		"ANIMATE_CSS_STEP":       "0.5",
		"ANIMATE_FRAME_INTERVAL": "0s",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			_, err := LoadEnv()
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
