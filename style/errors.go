// SPDX-License-Identifier: MIT

package style

import "errors"

var (
	// ErrEmptyKeyframes indicates an attempt to install a rule with no keyframes.
	ErrEmptyKeyframes = errors.New("style: keyframes are empty")

	// ErrNilRegistry indicates a nil Registry passed to InstallKeyframes.
	ErrNilRegistry = errors.New("style: registry is nil")

	// ErrDuplicateRule indicates InsertKeyframes on a name already present.
	ErrDuplicateRule = errors.New("style: keyframes rule already exists")

	// ErrEmptyName indicates a rule name that is blank.
	ErrEmptyName = errors.New("style: rule name is empty")
)
