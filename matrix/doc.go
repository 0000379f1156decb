// SPDX-License-Identifier: MIT

// Package matrix is the generic numeric grid engine underneath the 3D
// transform specialization.
//
// The matrix package provides:
//
//   - Matrix: a minimal interface (Rows, Cols, At, Set, Clone) that every
//     storage layout implements.
//   - Dense: a row-major, flat-slice implementation with safe accessors
//     (At/Set/Row/Col never panic; they return ErrOutOfRange).
//   - Mul: the standard matrix product with a *Dense fast-path.
//   - AllClose: tolerance comparison for tests and equality checks.
//
// Numeric policy: by default Set/Apply reject NaN and ±Inf (ErrNaNInf).
// Construct with NewDenseWithOptions(r, c, WithNoValidateNaNInf()) to relax.
//
// This is deliberately not a general linear-algebra library: there is no
// inversion, determinant or eigen-decomposition.
package matrix
