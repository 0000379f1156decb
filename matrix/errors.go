// SPDX-License-Identifier: MIT
// Package matrix: sentinel errors.
//
// Each operation wraps one of these with its own tag
// (fmt.Errorf("Tag: %w", ErrX)); match with errors.Is. Nothing here panics
// on bad input.

package matrix

import "errors"

var (
	// ErrInvalidDimensions: rows or cols < 1.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrBadShape: ragged caller data.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange: a row or column index outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch: operand shapes do not fit the operation.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf: a non-finite value under the finite-only policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix: a nil Matrix operand, typed or untyped.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
