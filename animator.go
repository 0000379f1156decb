// SPDX-License-Identifier: MIT

package animate

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/sync/singleflight"

	"github.com/wangfutao/animate.js/keyframe"
	"github.com/wangfutao/animate.js/transform"
)

const (
	// sampleTolerance absorbs floating accumulation at the last sample.
	sampleTolerance = 1e-6

	// MaxSamples caps the size of a single keyframe table.
	MaxSamples = 1 << 20
)

// Animator owns an ordered rule list and a bounded cache of sampled
// keyframe tables. It is safe for concurrent use.
type Animator struct {
	mu         sync.RWMutex
	rules      []*Rule
	translates int // rules[:translates] are the translate rules
	cssStep    float64

	name   string
	cache  *lru.Cache
	flight singleflight.Group
	clock  Clock
	logger *log.Logger
}

// New returns an Animator with no rules.
func New(opts ...Option) *Animator {
	o := gatherOptions(opts...)
	cache, _ := lru.New(o.cacheSize) // size >= 1 enforced by WithCacheSize

	return &Animator{
		cssStep: o.cssStep,
		name:    o.namer(),
		cache:   cache,
		clock:   o.clock,
		logger:  o.logger,
	}
}

// Name is the generated animation name, stable for the Animator's lifetime.
func (a *Animator) Name() string { return a.name }

// AddRule inserts r, keeping translate rules ahead of all others. A rule
// without a readable type is placed with the non-translate rules and
// reports its error on evaluation. nil is ignored.
func (a *Animator) AddRule(r *Rule) *Animator {
	if r == nil {
		return a
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	if kind, err := r.Type(); err == nil && kind == transform.KindTranslate {
		a.rules = append(a.rules, nil)
		copy(a.rules[a.translates+1:], a.rules[a.translates:])
		a.rules[a.translates] = r
		a.translates++

		return a
	}
	a.rules = append(a.rules, r)

	return a
}

// AddRules adds each rule in order.
func (a *Animator) AddRules(rules ...*Rule) *Animator {
	for _, r := range rules {
		a.AddRule(r)
	}

	return a
}

// AddRuleParams builds a Rule from p and adds it.
func (a *Animator) AddRuleParams(p RuleParams) (*Animator, error) {
	r, err := NewRule(p)
	if err != nil {
		return a, err
	}

	return a.AddRule(r), nil
}

// Rules returns the rules in evaluation order.
func (a *Animator) Rules() []*Rule {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]*Rule, len(a.rules))
	copy(out, a.rules)

	return out
}

// CSSStep is the normalized progress step used by RunDeclarative.
func (a *Animator) CSSStep() float64 {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.cssStep
}

// SetCSSStep changes the CSS step; it must lie in (0, MaxCSSStep].
func (a *Animator) SetCSSStep(step float64) error {
	if !validCSSStep(step) {
		return fmt.Errorf("SetCSSStep(%v): %w", step, ErrInvalidCSSStep)
	}
	a.mu.Lock()
	a.cssStep = step
	a.mu.Unlock()

	return nil
}

// Evaluate returns the composite transform at progress t: the identity
// right-multiplied by each rule's transform in evaluation order. t is not
// clamped; easing curves may overshoot.
func (a *Animator) Evaluate(t float64) (*transform.Transform3D, error) {
	return evaluate(a.Rules(), t)
}

func evaluate(rules []*Rule, t float64) (*transform.Transform3D, error) {
	composite := transform.New()
	for i, r := range rules {
		m, err := r.Transform(t)
		if err != nil {
			return nil, fmt.Errorf("Evaluate(%v) rule %d: %w", t, i, err)
		}
		if composite, err = composite.Multiply(m); err != nil {
			return nil, fmt.Errorf("Evaluate(%v) rule %d: %w", t, i, err)
		}
	}

	return composite, nil
}

// Sample evaluates the rules at t = 0, step, 2·step, … up to duration
// (inclusive within a small tolerance), plus t = duration itself when step
// does not divide it, and returns the (t, transform)
// table, progress in duration's unit. Tables are memoized per
// (duration, step); the cached table is returned as is and shared between
// callers, so treat it as read-only. An empty rule list yields an empty,
// uncached table.
func (a *Animator) Sample(duration, step float64) (*keyframe.Keyframes, error) {
	if !(duration > 0) || !(step > 0) || math.IsInf(duration, 0) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("Sample(%v, %v): %w", duration, step, ErrInvalidSampling)
	}
	if duration/step > MaxSamples {
		return nil, fmt.Errorf("Sample(%v, %v): more than %d samples: %w",
			duration, step, MaxSamples, ErrInvalidSampling)
	}
	rules := a.Rules()
	if len(rules) == 0 {
		return keyframe.New(), nil
	}

	key := CacheKey(duration, step)
	if v, ok := a.cache.Get(key); ok {
		return v.(*keyframe.Keyframes), nil
	}
	v, err, _ := a.flight.Do(key, func() (interface{}, error) {
		if v, ok := a.cache.Get(key); ok {
			return v, nil
		}
		kfs, err := sample(rules, duration, step)
		if err != nil {
			return nil, err
		}
		a.cache.Add(key, kfs)

		return kfs, nil
	})
	if err != nil {
		return nil, fmt.Errorf("Sample(%v, %v): %w", duration, step, err)
	}

	return v.(*keyframe.Keyframes), nil
}

func sample(rules []*Rule, duration, step float64) (*keyframe.Keyframes, error) {
	kfs := keyframe.New()
	last := math.Inf(-1)
	for t := 0.0; t <= duration+sampleTolerance; t += step {
		if err := addSample(kfs, rules, t, duration); err != nil {
			return nil, err
		}
		last = t
	}
	// step does not divide duration: close the table at t = duration
	if last < duration-sampleTolerance {
		if err := addSample(kfs, rules, duration, duration); err != nil {
			return nil, err
		}
	}

	return kfs, nil
}

func addSample(kfs *keyframe.Keyframes, rules []*Rule, t, duration float64) error {
	m, err := evaluate(rules, t/duration)
	if err != nil {
		return err
	}
	kfs.Add(keyframe.Keyframe{Progress: t, Transform: m.Copy()})

	return nil
}

// CacheLen is the number of memoized tables.
func (a *Animator) CacheLen() int { return a.cache.Len() }

// CacheKey is the memoization key of a (duration, step) table.
func CacheKey(duration, step float64) string {
	return "keyframes-d-" + strconv.FormatFloat(duration, 'g', -1, 64) +
		"-t-" + strconv.FormatFloat(step, 'g', -1, 64)
}

func (a *Animator) logf(format string, args ...interface{}) {
	if a.logger != nil {
		a.logger.Printf(format, args...)
	}
}
