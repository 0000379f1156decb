// SPDX-License-Identifier: MIT

package matrix

// Matrix is a fixed-shape, mutable grid of float64 with 0-based indices.
// Dense is the only storage here; transform.Transform3D wraps one.
type Matrix interface {
	Rows() int
	Cols() int

	// At reads (i, j); ErrOutOfRange outside the shape.
	At(i, j int) (float64, error)

	// Set writes (i, j); ErrOutOfRange outside the shape. Implementations
	// may reject values by policy (Dense rejects NaN/Inf by default).
	Set(i, j int, v float64) error

	// Clone is an independent deep copy of the same dynamic type.
	Clone() Matrix
}
