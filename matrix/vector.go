// SPDX-License-Identifier: MIT
// Package matrix: vector primitives over []float64.

package matrix

import "math"

// vec3Len is the only length for which the cross product is defined here.
const vec3Len = 3

// Dot returns the dot product of a and b.
//
// Inputs:
//   - a, b: vectors of identical length.
//
// Returns:
//   - float64: Σ a[i]*b[i].
//
// Errors:
//   - ErrDimensionMismatch when len(a) != len(b).
//
// Complexity: O(n).
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum, nil
}

// Cross returns the cross product of two 3-dimensional vectors.
// The result is a freshly allocated 3-element vector following the
// standard determinant-expansion formula.
//
// Errors:
//   - ErrDimensionMismatch unless both operands have exactly 3 components.
//
// Complexity: O(1).
func Cross(a, b []float64) ([]float64, error) {
	if len(a) != vec3Len || len(b) != vec3Len {
		return nil, ErrDimensionMismatch
	}

	return []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}, nil
}

// Norm returns the Euclidean length of v, computed as √(v·v).
// The empty vector has norm 0.
//
// Complexity: O(n).
func Norm(v []float64) float64 {
	// Dot cannot mismatch against itself; the error is structurally nil.
	sq, _ := Dot(v, v)

	return math.Sqrt(sq)
}
