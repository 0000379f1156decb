package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	animate "github.com/wangfutao/animate.js"
)

// ErrInvalidConfig indicates a value that parsed but is out of range.
var ErrInvalidConfig = errors.New("config: invalid value")

// Env is the process configuration read from ANIMATE_* variables.
type Env struct {
	CacheSize     int           `env:"ANIMATE_CACHE_SIZE" envDefault:"64"`
	CSSStep       float64       `env:"ANIMATE_CSS_STEP" envDefault:"0.004"`
	DBPath        string        `env:"ANIMATE_DB" envDefault:"animate.db"`
	FrameInterval time.Duration `env:"ANIMATE_FRAME_INTERVAL" envDefault:"16ms"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv parses and validates Env.
func LoadEnv() (Env, error) {
	var cfg Env
	if err := ParseEnv(&cfg); err != nil {
		return Env{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Env{}, err
	}
	return cfg, nil
}

// Validate checks ranges the parser cannot express.
func (e Env) Validate() error {
	if e.CacheSize < 1 {
		return fmt.Errorf("ANIMATE_CACHE_SIZE=%d: %w", e.CacheSize, ErrInvalidConfig)
	}
	if !(e.CSSStep > 0 && e.CSSStep <= animate.MaxCSSStep) {
		return fmt.Errorf("ANIMATE_CSS_STEP=%v: %w", e.CSSStep, ErrInvalidConfig)
	}
	if e.FrameInterval <= 0 {
		return fmt.Errorf("ANIMATE_FRAME_INTERVAL=%v: %w", e.FrameInterval, ErrInvalidConfig)
	}
	return nil
}

// Options converts Env into Animator options.
func (e Env) Options() []animate.Option {
	return []animate.Option{
		animate.WithCacheSize(e.CacheSize),
		animate.WithCSSStep(e.CSSStep),
		animate.WithClock(animate.NewClock(e.FrameInterval)),
	}
}
