// SPDX-License-Identifier: MIT

// Package transform specializes the matrix engine to a 4×4 homogeneous 3D
// transform.
//
// A Transform3D starts as the identity. Translate, Scale and Rotate write a
// single operation into it in place; Multiply composes two transforms into a
// new one. Serialization flattens the matrix column-major, which is the
// layout a CSS matrix3d() value expects:
//
//	t := transform.New()
//	t.Translate(5, transform.AxisX)
//	t.CSS() // "matrix3d(1,0,0,0,0,1,0,0,0,0,1,0,5,0,0,1)"
//
// Rotation conventions per axis (value in radians):
//
//	x: (1,1)=cos (2,1)=sin (1,2)=-sin (2,2)=cos
//	y: (0,0)=cos (2,0)=-sin (0,2)=sin (2,2)=cos
//	z: (0,0)=cos (1,0)=sin (0,1)=-sin (1,1)=cos
//
// The last row is conventionally [0 0 0 1] but composition is not forced
// to preserve it.
package transform
