// SPDX-License-Identifier: MIT

// Animator configuration.
//
// Options follow the functional-option pattern: documented defaults, WithX
// constructors that panic on nonsensical values (programmer error), and a
// gatherOptions helper that applies them in order.

package animate

import (
	"log"
	"math"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultCacheSize bounds the number of memoized keyframe tables.
	DefaultCacheSize = 64

	// DefaultCSSStep is the normalized progress step of a baked @keyframes rule.
	DefaultCSSStep = 0.004

	// MaxCSSStep is the coarsest allowed CSS step.
	MaxCSSStep = 0.1

	// DefaultTimeStep is the Sample step callers use for millisecond tables.
	DefaultTimeStep = 16.0

	// DefaultFrameInterval is the frame period of the default Clock.
	DefaultFrameInterval = 16 * time.Millisecond

	// NamePrefix starts every generated animation name.
	NamePrefix = "animatejs-"
)

const (
	panicCacheSize = "animate: WithCacheSize: size must be >= 1"
	panicCSSStep   = "animate: WithCSSStep: step must be in (0, 0.1]"
	panicNamer     = "animate: WithNamer: namer must not be nil"
	panicClock     = "animate: WithClock: clock must not be nil"
)

// Option mutates Options.
type Option func(*Options)

// Options is the effective Animator configuration.
type Options struct {
	cacheSize int
	cssStep   float64
	namer     func() string
	clock     Clock
	logger    *log.Logger
}

// WithCacheSize bounds the keyframe cache. Panics when size < 1.
func WithCacheSize(size int) Option {
	if size < 1 {
		panic(panicCacheSize)
	}

	return func(o *Options) { o.cacheSize = size }
}

// WithCSSStep sets the initial CSS sampling step. Panics outside (0, 0.1].
func WithCSSStep(step float64) Option {
	if !validCSSStep(step) {
		panic(panicCSSStep)
	}

	return func(o *Options) { o.cssStep = step }
}

// WithNamer replaces the animation name generator.
func WithNamer(namer func() string) Option {
	if namer == nil {
		panic(panicNamer)
	}

	return func(o *Options) { o.namer = namer }
}

// WithClock replaces the wall clock used by runs.
func WithClock(c Clock) Option {
	if c == nil {
		panic(panicClock)
	}

	return func(o *Options) { o.clock = c }
}

// WithLogger enables run lifecycle logging. A nil logger keeps it silent.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// NewName returns NamePrefix followed by a random UUID.
func NewName() string { return NamePrefix + uuid.NewString() }

func defaultOptions() Options {
	return Options{
		cacheSize: DefaultCacheSize,
		cssStep:   DefaultCSSStep,
		namer:     NewName,
		clock:     NewClock(DefaultFrameInterval),
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

func validCSSStep(step float64) bool {
	return step > 0 && step <= MaxCSSStep && !math.IsNaN(step)
}
