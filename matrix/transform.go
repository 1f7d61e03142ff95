// SPDX-License-Identifier: MIT
// Package matrix: homogeneous affine transform builders and appliers.
//
// Purpose:
//   - Build 3×3 (2D) and 4×4 (3D) homogeneous transforms for translation,
//     scaling and axis rotation.
//   - Apply transforms to points: homogenize (append 1), multiply,
//     perspective-divide by the resulting w.
//
// Notes:
//   - Rotation convention is the standard right-handed counter-clockwise
//     one in each plane.
//   - Angles are radians by default; Degrees converts via π/180. Any other
//     unit fails with ErrInvalidUnit.

package matrix

import (
	"math"
	"strings"
)

// Unit names the angular unit accepted by the rotation builders.
type Unit string

// Supported angle units. Matching is case-insensitive.
const (
	Radians Unit = "radians"
	Degrees Unit = "degrees"
)

// toRadians normalizes theta to radians according to unit.
func toRadians(theta float64, unit Unit) (float64, error) {
	switch Unit(strings.ToLower(string(unit))) {
	case Radians:
		return theta, nil
	case Degrees:
		return theta * math.Pi / 180.0, nil
	default:
		return 0, ErrInvalidUnit
	}
}

// Translate2D builds the 3×3 homogeneous translation by (tx, ty).
func Translate2D(tx, ty float64) [][]float64 {
	return [][]float64{
		{1.0, 0.0, tx},
		{0.0, 1.0, ty},
		{0.0, 0.0, 1.0},
	}
}

// Scale2D builds the 3×3 homogeneous scale matrix. One factor scales both
// axes uniformly; two factors scale x and y independently.
//
// Errors:
//   - ErrDimensionMismatch unless exactly 1 or 2 factors are given.
func Scale2D(factors ...float64) ([][]float64, error) {
	var sx, sy float64
	switch len(factors) {
	case 1:
		sx, sy = factors[0], factors[0]
	case 2:
		sx, sy = factors[0], factors[1]
	default:
		return nil, ErrDimensionMismatch
	}

	return [][]float64{
		{sx, 0.0, 0.0},
		{0.0, sy, 0.0},
		{0.0, 0.0, 1.0},
	}, nil
}

// Rotate2D builds the 3×3 homogeneous counter-clockwise rotation by theta.
//
// Errors:
//   - ErrInvalidUnit when unit is neither Radians nor Degrees.
func Rotate2D(theta float64, unit Unit) ([][]float64, error) {
	rad, err := toRadians(theta, unit)
	if err != nil {
		return nil, err
	}
	c, s := math.Cos(rad), math.Sin(rad)

	return [][]float64{
		{c, -s, 0.0},
		{s, c, 0.0},
		{0.0, 0.0, 1.0},
	}, nil
}

// ApplyTransform2D applies a 3×3 transform to a 2D point.
// The point is homogenized to (x, y, 1), multiplied by t, and the result
// is perspective-divided by its homogeneous coordinate w.
//
// Inputs:
//   - t:     3×3 transform matrix.
//   - point: exactly 2 components (x, y).
//
// Returns:
//   - x, y: transformed Euclidean coordinates.
//
// Errors:
//   - ErrInvalidShape         (malformed t, via Shape).
//   - ErrShapeMismatch        (t not 3×3, or wrong point arity).
//   - ErrDegenerateTransform  (resulting w is exactly zero).
func ApplyTransform2D(t [][]float64, point []float64) (x, y float64, err error) {
	rows, cols, err := Shape(t)
	if err != nil {
		return 0, 0, err
	}
	if rows != 3 || cols != 3 {
		return 0, 0, ErrShapeMismatch
	}
	if len(point) != 2 {
		return 0, 0, ErrShapeMismatch
	}

	out, err := MatVec(t, []float64{point[0], point[1], 1.0})
	if err != nil {
		return 0, 0, err
	}
	w := out[2]
	if w == 0 {
		return 0, 0, ErrDegenerateTransform
	}

	return out[0] / w, out[1] / w, nil
}

// Translate3D builds the 4×4 homogeneous translation by (tx, ty, tz).
func Translate3D(tx, ty, tz float64) [][]float64 {
	return [][]float64{
		{1.0, 0.0, 0.0, tx},
		{0.0, 1.0, 0.0, ty},
		{0.0, 0.0, 1.0, tz},
		{0.0, 0.0, 0.0, 1.0},
	}
}

// Scale3D builds the 4×4 homogeneous scale matrix. One factor scales all
// three axes uniformly; three factors scale x, y and z independently.
//
// Errors:
//   - ErrDimensionMismatch unless exactly 1 or 3 factors are given.
func Scale3D(factors ...float64) ([][]float64, error) {
	var sx, sy, sz float64
	switch len(factors) {
	case 1:
		sx, sy, sz = factors[0], factors[0], factors[0]
	case 3:
		sx, sy, sz = factors[0], factors[1], factors[2]
	default:
		return nil, ErrDimensionMismatch
	}

	return [][]float64{
		{sx, 0.0, 0.0, 0.0},
		{0.0, sy, 0.0, 0.0},
		{0.0, 0.0, sz, 0.0},
		{0.0, 0.0, 0.0, 1.0},
	}, nil
}

// RotateX builds the 4×4 rotation about the x axis by theta.
//
// Errors:
//   - ErrInvalidUnit when unit is neither Radians nor Degrees.
func RotateX(theta float64, unit Unit) ([][]float64, error) {
	rad, err := toRadians(theta, unit)
	if err != nil {
		return nil, err
	}
	c, s := math.Cos(rad), math.Sin(rad)

	return [][]float64{
		{1.0, 0.0, 0.0, 0.0},
		{0.0, c, -s, 0.0},
		{0.0, s, c, 0.0},
		{0.0, 0.0, 0.0, 1.0},
	}, nil
}

// RotateY builds the 4×4 rotation about the y axis by theta.
//
// Errors:
//   - ErrInvalidUnit when unit is neither Radians nor Degrees.
func RotateY(theta float64, unit Unit) ([][]float64, error) {
	rad, err := toRadians(theta, unit)
	if err != nil {
		return nil, err
	}
	c, s := math.Cos(rad), math.Sin(rad)

	return [][]float64{
		{c, 0.0, s, 0.0},
		{0.0, 1.0, 0.0, 0.0},
		{-s, 0.0, c, 0.0},
		{0.0, 0.0, 0.0, 1.0},
	}, nil
}

// RotateZ builds the 4×4 rotation about the z axis by theta.
//
// Errors:
//   - ErrInvalidUnit when unit is neither Radians nor Degrees.
func RotateZ(theta float64, unit Unit) ([][]float64, error) {
	rad, err := toRadians(theta, unit)
	if err != nil {
		return nil, err
	}
	c, s := math.Cos(rad), math.Sin(rad)

	return [][]float64{
		{c, -s, 0.0, 0.0},
		{s, c, 0.0, 0.0},
		{0.0, 0.0, 1.0, 0.0},
		{0.0, 0.0, 0.0, 1.0},
	}, nil
}

// ApplyTransform3D applies a 4×4 transform to a 3D point.
// The point is homogenized to (x, y, z, 1), multiplied by t, and the
// result is perspective-divided by its homogeneous coordinate w.
//
// Inputs:
//   - t:     4×4 transform matrix.
//   - point: exactly 3 components (x, y, z).
//
// Returns:
//   - x, y, z: transformed Euclidean coordinates.
//
// Errors:
//   - ErrInvalidShape         (malformed t, via Shape).
//   - ErrShapeMismatch        (t not 4×4, or wrong point arity).
//   - ErrDegenerateTransform  (resulting w is exactly zero).
func ApplyTransform3D(t [][]float64, point []float64) (x, y, z float64, err error) {
	rows, cols, err := Shape(t)
	if err != nil {
		return 0, 0, 0, err
	}
	if rows != 4 || cols != 4 {
		return 0, 0, 0, ErrShapeMismatch
	}
	if len(point) != 3 {
		return 0, 0, 0, ErrShapeMismatch
	}

	out, err := MatVec(t, []float64{point[0], point[1], point[2], 1.0})
	if err != nil {
		return 0, 0, 0, err
	}
	w := out[3]
	if w == 0 {
		return 0, 0, 0, ErrDegenerateTransform
	}

	return out[0] / w, out[1] / w, out[2] / w, nil
}
