// Package xform decomposes affine 4x4 transform matrices into translation,
// Euler rotation, and scale, and recomposes them.
//
// Matrices follow the mathgl convention: column-major [mgl64.Mat4] values
// acting on column vectors, translation in the fourth column. [Decompose]
// and [Compose] are exact inverses for non-degenerate transforms, up to the
// multi-valuedness of Euler angles and the deliberate rounding of scale.
//
// Matrices with a zero-length basis column (zero scale) have no defined
// rotation; Decompose does not detect them and its rotation output for such
// input is meaningless.
package xform
