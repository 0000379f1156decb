// SPDX-License-Identifier: MIT

package style

import (
	"strconv"
	"sync"
	"time"
)

// Target is an element that can be bound to a named keyframes animation.
type Target interface {
	SetTransform(css string)
	SetAnimation(name string, d time.Duration, count string)
}

// Element is an in-memory Target that records every property it receives.
type Element struct {
	mu         sync.Mutex
	transform  string
	animation  string
	iterations string
	history    []string
}

var _ Target = (*Element)(nil)

// SetTransform stores css as the element's transform.
func (e *Element) SetTransform(css string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.transform = css
	e.history = append(e.history, css)
}

// SetAnimation stores "<name> <ms>ms" as the animation shorthand and count
// as the iteration count.
func (e *Element) SetAnimation(name string, d time.Duration, count string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.animation = AnimationShorthand(name, d)
	e.iterations = count
}

// Transform is the last transform set.
func (e *Element) Transform() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.transform
}

// Animation is the animation shorthand, empty if never bound.
func (e *Element) Animation() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.animation
}

// IterationCount is the bound iteration count.
func (e *Element) IterationCount() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.iterations
}

// Transforms returns every transform set, oldest first.
func (e *Element) Transforms() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.history))
	copy(out, e.history)

	return out
}

// AnimationShorthand renders the CSS animation value "<name> <ms>ms".
func AnimationShorthand(name string, d time.Duration) string {
	ms := float64(d) / float64(time.Millisecond)

	return name + " " + strconv.FormatFloat(ms, 'g', -1, 64) + "ms"
}
