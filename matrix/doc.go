// Package matrix offers dense linear algebra over plain Go slices.
//
// The matrix package provides:
//
//   - Vector primitives (Dot, Cross, Norm) over []float64.
//   - Dense matrix construction and shape utilities (Shape, Zeros,
//     Filled, Identity, Transpose, MatMul, MatVec, Minor) over
//     row-major [][]float64.
//   - Square-matrix routines built on Gaussian elimination with
//     partial pivoting: Det, Solve and a Gauss-Jordan Inverse.
//   - 2D (3×3) and 3D (4×4) homogeneous affine transform builders
//     (translation, scale, rotation) and point appliers with a
//     perspective divide.
//
// Matrices are ordinary slices of rows; there is no wrapper type to
// construct or unwrap. Every operation validates its inputs up front,
// returns a fresh result and never mutates its arguments — the
// elimination-based routines work on internal copies.
//
// Singularity is handled asymmetrically on purpose: Det reports a
// singular matrix as the value 0 with no error, while Solve and
// Inverse fail hard with ErrSingular. Both decisions share one fixed
// pivot tolerance of 1e-12.
//
// See the examples in this package for usage patterns.
package matrix
