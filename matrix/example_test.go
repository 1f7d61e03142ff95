// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/kitforge/kitforge/matrix"
)

// ExampleDet computes the determinant of a small matrix. A singular matrix
// simply yields 0 — no error.
func ExampleDet() {
	d, _ := matrix.Det([][]float64{{2, 0}, {0, 2}})
	singular, _ := matrix.Det([][]float64{{1, 2}, {2, 4}})
	fmt.Println(d, singular)

	// Output:
	// 4 0
}

// ExampleSolve solves a 2×2 linear system A·x = b.
func ExampleSolve() {
	a := [][]float64{
		{2, 0},
		{0, 2},
	}
	x, _ := matrix.Solve(a, []float64{4, 6})
	fmt.Println(x)

	// Output:
	// [2 3]
}

// ExampleInverse inverts a diagonal matrix and verifies A·A⁻¹ = I.
func ExampleInverse() {
	a := [][]float64{
		{2, 0},
		{0, 4},
	}
	inv, _ := matrix.Inverse(a)
	prod, _ := matrix.MatMul(a, inv)
	fmt.Println(inv)
	fmt.Println(prod)

	// Output:
	// [[0.5 0] [0 0.25]]
	// [[1 0] [0 1]]
}

// ExampleApplyTransform2D moves a point with a homogeneous translation.
func ExampleApplyTransform2D() {
	x, y, _ := matrix.ApplyTransform2D(matrix.Translate2D(3, 4), []float64{1, 1})
	fmt.Println(x, y)

	// Output:
	// 4 5
}

// ExampleCross computes the canonical basis cross product x̂ × ŷ = ẑ.
func ExampleCross() {
	v, _ := matrix.Cross([]float64{1, 0, 0}, []float64{0, 1, 0})
	fmt.Println(v)

	// Output:
	// [0 0 1]
}
