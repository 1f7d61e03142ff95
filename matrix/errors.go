// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Do not %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrInvalidShape is returned for malformed matrices: no rows, empty
	// rows, ragged rows, or non-positive requested dimensions.
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates incompatible operand lengths, e.g.
	// Dot over different-length vectors, Cross over non-3D vectors, or
	// MatMul/MatVec with disagreeing inner dimensions.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrShapeMismatch signals that a square matrix was required but the
	// input was not, or that a transform/point pair has the wrong arity.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrSingular is returned by Solve and Inverse when an elimination
	// pivot falls below the fixed tolerance. Det never returns it: a
	// singular determinant is the value 0, not a failure.
	ErrSingular = errors.New("matrix: matrix is singular")

	// ErrInvalidUnit rejects angle units other than "degrees" or "radians".
	ErrInvalidUnit = errors.New("matrix: unit must be degrees or radians")

	// ErrDegenerateTransform indicates a zero homogeneous coordinate (w)
	// when applying a transform, so the perspective divide is undefined.
	ErrDegenerateTransform = errors.New("matrix: degenerate transform (w=0)")
)
