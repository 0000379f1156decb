// SPDX-License-Identifier: MIT

package transform

import "errors"

var (
	// ErrNotTransform is returned when a matrix that is not 4×4 is used
	// where a Transform3D is required.
	ErrNotTransform = errors.New("transform: matrix is not 4x4")

	// ErrUnknownAxis indicates an axis name outside {"", x, y, z}.
	ErrUnknownAxis = errors.New("transform: unknown axis")

	// ErrUnknownKind indicates a kind name outside {translate, rotate, scale}.
	ErrUnknownKind = errors.New("transform: unknown kind")
)
