// SPDX-License-Identifier: MIT
// Package matrix: dense construction, shape utilities and products.
//
// Purpose:
//   - Keep all rectangular-shape validation in one place (Shape).
//   - Provide the canonical constructors (Zeros, Filled, Identity) and the
//     structural operations (Transpose, MatMul, MatVec, Minor).
//
// Notes:
//   - Matrices are row-major [][]float64 with at least one row and one
//     column; every row must have the same length.
//   - All functions return fresh slices and never alias or mutate inputs.

package matrix

// Shape returns the (rows, cols) of m after validating it is a proper
// rectangular matrix.
//
// Implementation:
//   - Stage 1: Reject nil/empty matrices and empty first rows.
//   - Stage 2: Walk remaining rows and require identical lengths.
//
// Inputs:
//   - m: candidate matrix.
//
// Returns:
//   - rows, cols: dimensions of m.
//
// Errors:
//   - ErrInvalidShape when m has no rows, a row is empty, or rows are ragged.
//
// Complexity: O(rows).
func Shape(m [][]float64) (rows, cols int, err error) {
	if len(m) == 0 {
		return 0, 0, ErrInvalidShape
	}
	rows, cols = len(m), len(m[0])
	if cols == 0 {
		return 0, 0, ErrInvalidShape
	}
	for _, row := range m {
		if len(row) != cols {
			return 0, 0, ErrInvalidShape
		}
	}

	return rows, cols, nil
}

// Filled builds a rows×cols matrix with every cell set to value.
//
// Errors:
//   - ErrInvalidShape when rows or cols is not positive.
//
// Complexity: Time O(rows*cols), Space O(rows*cols).
func Filled(rows, cols int, value float64) ([][]float64, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidShape
	}
	m := make([][]float64, rows)
	var i, j int // loop iterators
	for i = 0; i < rows; i++ {
		m[i] = make([]float64, cols)
		if value != 0 {
			for j = 0; j < cols; j++ {
				m[i][j] = value
			}
		}
	}

	return m, nil
}

// Zeros builds a rows×cols matrix of zeros. Shorthand for Filled(rows, cols, 0).
func Zeros(rows, cols int) ([][]float64, error) { return Filled(rows, cols, 0) }

// Identity builds the n×n identity matrix: 1 on the diagonal, 0 elsewhere.
//
// Errors:
//   - ErrInvalidShape when n is not positive.
//
// Complexity: Time O(n²), Space O(n²).
func Identity(n int) ([][]float64, error) {
	m, err := Zeros(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m[i][i] = 1.0
	}

	return m, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Output dimensions are flipped; the input is never mutated.
//
// Errors:
//   - ErrInvalidShape when m is malformed (via Shape).
//
// Complexity: Time O(rows*cols), Space O(rows*cols).
func Transpose(m [][]float64) ([][]float64, error) {
	rows, cols, err := Shape(m)
	if err != nil {
		return nil, err
	}
	out := make([][]float64, cols)
	var i, j int // loop iterators
	for j = 0; j < cols; j++ {
		out[j] = make([]float64, rows)
		for i = 0; i < rows; i++ {
			out[j][i] = m[i][j]
		}
	}

	return out, nil
}

// MatMul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: Validate both operands and the inner dimension (A.cols == B.rows).
//   - Stage 2: Accumulate with the i→k→j loop order, hoisting A[i][k] and
//     skipping zeros; the order is a cache-locality choice, not a semantic one.
//
// Inputs:
//   - a: left matrix (r×n).
//   - b: right matrix (n×c).
//
// Returns:
//   - [][]float64: fresh C with shape (r×c).
//
// Errors:
//   - ErrInvalidShape       (malformed operand, via Shape).
//   - ErrDimensionMismatch  (inner dimensions disagree).
//
// Complexity: Time O(r*n*c), Space O(r*c).
func MatMul(a, b [][]float64) ([][]float64, error) {
	aRows, aCols, err := Shape(a)
	if err != nil {
		return nil, err
	}
	bRows, bCols, err := Shape(b)
	if err != nil {
		return nil, err
	}
	if aCols != bRows {
		return nil, ErrDimensionMismatch
	}

	out, err := Zeros(aRows, bCols)
	if err != nil {
		return nil, err
	}
	var (
		i, j, k int     // loop iterators (deterministic i→k→j order)
		aik     float64 // hoisted A[i][k]
	)
	for i = 0; i < aRows; i++ {
		for k = 0; k < aCols; k++ {
			aik = a[i][k]
			if aik == 0 {
				continue // skip zero for performance
			}
			for j = 0; j < bCols; j++ {
				out[i][j] += aik * b[k][j]
			}
		}
	}

	return out, nil
}

// MatVec computes y = m × x for a column vector x.
// Returns one dot product per row.
//
// Errors:
//   - ErrInvalidShape       (malformed m, via Shape).
//   - ErrDimensionMismatch  (len(x) != columns of m).
//
// Complexity: Time O(rows*cols), Space O(rows).
func MatVec(m [][]float64, x []float64) ([]float64, error) {
	rows, cols, err := Shape(m)
	if err != nil {
		return nil, err
	}
	if len(x) != cols {
		return nil, ErrDimensionMismatch
	}
	y := make([]float64, rows)
	for i := 0; i < rows; i++ {
		// Dot cannot fail here: row length equals len(x) by validation.
		y[i], _ = Dot(m[i], x)
	}

	return y, nil
}

// Minor returns the matrix formed by deleting row r and column c from m,
// preserving the relative order of the remaining rows and columns.
//
// Errors:
//   - ErrInvalidShape   (malformed m, or deletion would leave no rows/columns).
//   - ErrShapeMismatch  (r or c outside m's bounds).
//
// Complexity: Time O(rows*cols), Space O((rows-1)*(cols-1)).
func Minor(m [][]float64, r, c int) ([][]float64, error) {
	rows, cols, err := Shape(m)
	if err != nil {
		return nil, err
	}
	if r < 0 || r >= rows || c < 0 || c >= cols {
		return nil, ErrShapeMismatch
	}
	if rows == 1 || cols == 1 {
		return nil, ErrInvalidShape // result would be an empty matrix
	}

	out := make([][]float64, 0, rows-1)
	var i, j int // loop iterators
	for i = 0; i < rows; i++ {
		if i == r {
			continue
		}
		row := make([]float64, 0, cols-1)
		for j = 0; j < cols; j++ {
			if j == c {
				continue
			}
			row = append(row, m[i][j])
		}
		out = append(out, row)
	}

	return out, nil
}
