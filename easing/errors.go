package easing

import "errors"

var (
	// ErrUnknown indicates a name that is not in the registry.
	// Custom is reported as unknown as well: it has no registry entry.
	ErrUnknown = errors.New("easing: unknown easing function")
)
