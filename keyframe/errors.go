package keyframe

import "errors"

var (
	// ErrEmpty indicates an index lookup on an empty collection.
	ErrEmpty = errors.New("keyframe: collection is empty")

	// ErrOutOfRange indicates an index outside [0, Len).
	ErrOutOfRange = errors.New("keyframe: index out of range")

	// ErrInvalidProgress indicates a NaN lookup key.
	ErrInvalidProgress = errors.New("keyframe: progress is NaN")

	// ErrUnknownMethod indicates a lookup policy outside {round, floor, ceil}.
	ErrUnknownMethod = errors.New("keyframe: unknown lookup method")
)
