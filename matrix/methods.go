// Package matrix: operations over any Matrix. Each validates its operands
// first and wraps the sentinel with the operation name.
package matrix

import (
	"fmt"
	"math"
)

const (
	opMul      = "Mul"
	opAllClose = "AllClose"
)

func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns a × b as a new *Dense; neither operand changes.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (nil operands, a.Cols == b.Rows).
//   - Stage 2: two *Dense operands take the i-k-j loop over the flat
//     buffers, skipping zero a(i,k); anything else goes through At.
//
// Complexity: O(r·n·c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	n, inner, cols := a.Rows(), a.Cols(), b.Cols()
	out, err := NewDense(n, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	da, aDense := a.(*Dense)
	db, bDense := b.(*Dense)
	if aDense && bDense {
		for i := 0; i < n; i++ {
			dst := out.data[i*cols : (i+1)*cols]
			for k := 0; k < inner; k++ {
				aik := da.data[i*inner+k]
				if aik == 0 {
					continue
				}
				src := db.data[k*cols : (k+1)*cols]
				for j := range dst {
					dst[j] += aik * src[j]
				}
			}
		}

		return out, nil
	}

	for i := 0; i < n; i++ {
		for j := 0; j < cols; j++ {
			var sum float64
			for k := 0; k < inner; k++ {
				aik, err := a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if aik == 0 {
					continue
				}
				bkj, err := b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				sum += aik * bkj
			}
			if err = out.Set(i, j, sum); err != nil {
				return nil, matrixErrorf(opMul, err)
			}
		}
	}

	return out, nil
}

// AllClose reports whether |a(i,j) - b(i,j)| ≤ atol + rtol·|b(i,j)| holds
// for every element. Negative tolerances are taken by magnitude; NaN
// elements never compare close.
//
// Errors: ErrNaNInf (non-finite tolerance), ErrNilMatrix,
// ErrDimensionMismatch.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	for _, m := range []Matrix{a, b} {
		if err := ValidateNotNil(m); err != nil {
			return false, matrixErrorf(opAllClose, err)
		}
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, _ := a.At(i, j)
			bv, _ := b.At(i, j)
			if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
				return false, nil
			}
		}
	}

	return true, nil
}
