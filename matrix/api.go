// SPDX-License-Identifier: MIT

package matrix

// NewIdentity returns the n×n identity.
func NewIdentity(n int) (*Dense, error) {
	id, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for d := 0; d < n; d++ {
		id.data[d*n+d] = 1
	}

	return id, nil
}

// AllCloseDefault compares with absolute tolerance only, taken from opts
// (DefaultEpsilon unless WithEpsilon overrides it).
func AllCloseDefault(a, b Matrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)

	return AllClose(a, b, 0, o.eps)
}
