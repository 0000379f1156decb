// SPDX-License-Identifier: MIT

package animate

import "errors"

// Rule construction and accessor errors.
var (
	// ErrMissingEasing indicates a rule read without an easing selector.
	ErrMissingEasing = errors.New("animate: easing function is not set")

	// ErrUnknownEasing indicates an easing selector outside the registry.
	ErrUnknownEasing = errors.New("animate: unknown easing function")

	// ErrMissingCustomEasing indicates Easing == custom without a function.
	ErrMissingCustomEasing = errors.New("animate: custom easing requires a function")

	// ErrMissingType indicates a rule read without a transform type.
	ErrMissingType = errors.New("animate: rule type is not set")

	// ErrMissingDirection indicates a translate rule without a direction.
	ErrMissingDirection = errors.New("animate: translate rule requires a direction")

	// ErrMissingRange indicates a rule read without from or to.
	ErrMissingRange = errors.New("animate: rule range is not set")
)

// Animator parameter errors.
var (
	// ErrInvalidIterationCount indicates a count that is neither a positive
	// integer nor infinite.
	ErrInvalidIterationCount = errors.New("animate: iteration count must be a positive integer or infinite")

	// ErrNegativeDelay indicates delay < 0.
	ErrNegativeDelay = errors.New("animate: delay must not be negative")

	// ErrInvalidDuration indicates a run duration ≤ 0.
	ErrInvalidDuration = errors.New("animate: duration must be positive")

	// ErrInvalidCSSStep indicates a CSS sampling step outside (0, 0.1].
	ErrInvalidCSSStep = errors.New("animate: css keyframe step must be in (0, 0.1]")

	// ErrInvalidSampling indicates a non-positive or non-finite duration or
	// step, or a grid too dense to sample.
	ErrInvalidSampling = errors.New("animate: invalid sampling parameters")
)
