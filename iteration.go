// SPDX-License-Identifier: MIT

package animate

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// IterationCount is how many times a run repeats: a positive integer or
// Infinite. It is a float so that a fractional count can be expressed and
// rejected.
type IterationCount float64

const (
	// Once plays a single iteration.
	Once IterationCount = 1

	infiniteLiteral = "infinite"
)

// Infinite repeats until the context is cancelled.
var Infinite = IterationCount(math.Inf(1))

// Count converts n to an IterationCount without validating it.
func Count(n float64) IterationCount { return IterationCount(n) }

// ParseIterationCount accepts "infinite" or a positive integer.
func ParseIterationCount(s string) (IterationCount, error) {
	s = strings.TrimSpace(s)
	if s == infiniteLiteral {
		return Infinite, nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(n, 0) { // only the literal spells infinity
		return 0, fmt.Errorf("ParseIterationCount(%q): %w", s, ErrInvalidIterationCount)
	}
	c := IterationCount(n)
	if err = c.Validate(); err != nil {
		return 0, fmt.Errorf("ParseIterationCount(%q): %w", s, err)
	}

	return c, nil
}

// IsInfinite reports c == Infinite.
func (c IterationCount) IsInfinite() bool { return math.IsInf(float64(c), 1) }

// Validate rejects zero, negative, fractional and NaN counts.
func (c IterationCount) Validate() error {
	if c.IsInfinite() {
		return nil
	}
	n := float64(c)
	if math.IsNaN(n) || n <= 0 || n != math.Floor(n) {
		return fmt.Errorf("%v: %w", n, ErrInvalidIterationCount)
	}

	return nil
}

// String renders the CSS animation-iteration-count value.
func (c IterationCount) String() string {
	if c.IsInfinite() {
		return infiniteLiteral
	}

	return strconv.FormatFloat(float64(c), 'f', -1, 64)
}

// done reports whether completed iterations satisfy c.
func (c IterationCount) done(completed int) bool {
	return !c.IsInfinite() && float64(completed) >= float64(c)
}
