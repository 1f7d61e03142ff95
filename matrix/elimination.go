// SPDX-License-Identifier: MIT
// Package matrix: elimination-based square-matrix routines.
//
// Purpose:
//   - Declare the canonical kernels Det, Solve and Inverse, all built on
//     Gaussian elimination with partial pivoting.
//   - Keep one shared pivot-tolerance policy (pivotEps) for all three.
//
// Notes:
//   - Every kernel copies its input before eliminating; caller data is
//     never touched.
//   - Det treats a sub-tolerance pivot column as "determinant is zero"
//     and returns 0 with no error. Solve and Inverse treat the identical
//     condition as ErrSingular. The asymmetry is intentional: a zero
//     determinant is a well-defined value, an unsolvable system is not.

package matrix

import "math"

// pivotEps is the fixed numerical tolerance below which a pivot candidate is
// considered zero. It governs both pivot selection and the determinant's
// singular shortcut. Policy constant, not caller-configurable.
const pivotEps = 1e-12

// clone returns a row-by-row deep copy of m. Callers must have validated m.
func clone(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}

	return out
}

// pivotRow scans rows col..n-1 of column col in m and returns the index of
// the row with the maximum absolute value, together with that magnitude.
// Deterministic: ties keep the first (lowest-index) candidate.
func pivotRow(m [][]float64, col, n int) (row int, maxAbs float64) {
	row = col
	var v float64
	for r := col; r < n; r++ {
		v = math.Abs(m[r][col])
		if v > maxAbs {
			maxAbs, row = v, r
		}
	}

	return row, maxAbs
}

// Det computes the determinant of a square matrix via Gaussian elimination
// with partial pivoting.
//
// Implementation:
//   - Stage 1: Validate squareness, copy m into a scratch matrix.
//   - Stage 2: For each column pick the max-|value| pivot among remaining
//     rows; swap it into place (each swap flips an accumulated sign),
//     multiply the running product by the pivot, and eliminate entries
//     below it. Entries left of the pivot column are already zero and
//     are skipped.
//
// Behavior highlights:
//   - A pivot column whose best candidate is below pivotEps means the
//     matrix is singular: the result is 0.0 with a nil error. This is a
//     defined outcome, not a failure.
//   - Deterministic pivot scan and elimination order.
//
// Inputs:
//   - m: square matrix (n×n).
//
// Returns:
//   - float64: sign * product of pivots.
//
// Errors:
//   - ErrInvalidShape  (malformed m, via Shape).
//   - ErrShapeMismatch (m is not square).
//
// Complexity: Time O(n³), Space O(n²) for the scratch copy.
func Det(m [][]float64) (float64, error) {
	rows, cols, err := Shape(m)
	if err != nil {
		return 0, err
	}
	if rows != cols {
		return 0, ErrShapeMismatch
	}

	work := clone(m) // never mutate caller data
	n := rows
	det := 1.0
	sign := 1.0

	var (
		col, r, k     int     // loop iterators
		pr            int     // selected pivot row
		maxAbs        float64 // magnitude of the selected pivot
		pivot, factor float64
	)
	for col = 0; col < n; col++ {
		pr, maxAbs = pivotRow(work, col, n)
		if maxAbs < pivotEps {
			return 0.0, nil // singular: defined zero result
		}
		if pr != col {
			work[col], work[pr] = work[pr], work[col]
			sign = -sign // each row swap flips the determinant's sign
		}

		pivot = work[col][col]
		det *= pivot

		// Eliminate below the pivot; columns left of col are already zero.
		for r = col + 1; r < n; r++ {
			factor = work[r][col] / pivot
			if math.Abs(factor) < pivotEps {
				continue
			}
			for k = col; k < n; k++ {
				work[r][k] -= factor * work[col][k]
			}
		}
	}

	return sign * det, nil
}

// Solve solves the linear system A·x = b via Gaussian elimination with
// partial pivoting and pivot-row normalization.
//
// Implementation:
//   - Stage 1: Validate A square and len(b) == n; build the augmented
//     [A | b] scratch matrix.
//   - Stage 2: Forward elimination — per column select the max-|value|
//     pivot, swap into place, divide the pivot row through by the pivot
//     (leading 1), eliminate below.
//   - Stage 3: Back substitution from the last row upward.
//
// Behavior highlights:
//   - A sub-tolerance pivot is a hard failure (no unique solution),
//     unlike Det's zero shortcut.
//   - Deterministic traversal; input A and b stay untouched.
//
// Inputs:
//   - a: square coefficient matrix (n×n).
//   - b: right-hand side of length n.
//
// Returns:
//   - []float64: solution vector x of length n.
//
// Errors:
//   - ErrInvalidShape  (malformed a, via Shape).
//   - ErrShapeMismatch (a not square, or len(b) != rows of a).
//   - ErrSingular      (pivot below tolerance).
//
// Complexity: Time O(n³), Space O(n²) for the augmented copy.
func Solve(a [][]float64, b []float64) ([]float64, error) {
	rows, cols, err := Shape(a)
	if err != nil {
		return nil, err
	}
	if rows != cols {
		return nil, ErrShapeMismatch
	}
	n := rows
	if len(b) != n {
		return nil, ErrShapeMismatch
	}

	// Augmented matrix [A | b].
	aug := make([][]float64, n)
	var i, j int // loop iterators
	for i = 0; i < n; i++ {
		aug[i] = make([]float64, n+1)
		copy(aug[i], a[i])
		aug[i][n] = b[i]
	}

	var (
		col, r        int
		pr            int
		maxAbs        float64
		pivot, factor float64
	)
	// Forward elimination.
	for col = 0; col < n; col++ {
		pr, maxAbs = pivotRow(aug, col, n)
		if maxAbs < pivotEps {
			return nil, ErrSingular
		}
		if pr != col {
			aug[col], aug[pr] = aug[pr], aug[col]
		}

		// Normalize the pivot row to a leading 1 (stability & readability).
		pivot = aug[col][col]
		for j = col; j <= n; j++ {
			aug[col][j] /= pivot
		}

		// Eliminate below.
		for r = col + 1; r < n; r++ {
			factor = aug[r][col]
			if math.Abs(factor) < pivotEps {
				continue
			}
			for j = col; j <= n; j++ {
				aug[r][j] -= factor * aug[col][j]
			}
		}
	}

	// Back substitution: x[i] = aug[i][n] - Σ aug[i][j]*x[j] for j > i.
	x := make([]float64, n)
	var sum float64
	for i = n - 1; i >= 0; i-- {
		sum = aug[i][n]
		for j = i + 1; j < n; j++ {
			sum -= aug[i][j] * x[j]
		}
		x[i] = sum
	}

	return x, nil
}

// Inverse computes A⁻¹ via Gauss-Jordan elimination on the augmented
// [A | I] matrix.
//
// Implementation:
//   - Stage 1: Validate A square; build the n×2n scratch [A | I].
//   - Stage 2: Per column select the max-|value| pivot among remaining
//     rows, swap into place, normalize the pivot row across all 2n
//     columns, then eliminate that column from EVERY other row — above
//     and below (full reduction, not just forward elimination).
//   - Stage 3: The right half of the reduced matrix is A⁻¹.
//
// Inputs:
//   - a: square matrix (n×n).
//
// Returns:
//   - [][]float64: fresh n×n inverse.
//
// Errors:
//   - ErrInvalidShape  (malformed a, via Shape).
//   - ErrShapeMismatch (a not square).
//   - ErrSingular      (pivot below tolerance; a is not invertible).
//
// Complexity: Time O(n³), Space O(n²).
func Inverse(a [][]float64) ([][]float64, error) {
	rows, cols, err := Shape(a)
	if err != nil {
		return nil, err
	}
	if rows != cols {
		return nil, ErrShapeMismatch
	}
	n := rows

	// Augmented matrix [A | I].
	aug := make([][]float64, n)
	var i, j int // loop iterators
	for i = 0; i < n; i++ {
		aug[i] = make([]float64, 2*n)
		copy(aug[i], a[i])
		aug[i][n+i] = 1.0
	}

	var (
		col, r        int
		pr            int
		maxAbs        float64
		pivot, factor float64
	)
	for col = 0; col < n; col++ {
		pr, maxAbs = pivotRow(aug, col, n)
		if maxAbs < pivotEps {
			return nil, ErrSingular
		}
		if pr != col {
			aug[col], aug[pr] = aug[pr], aug[col]
		}

		// Normalize the pivot row across the full augmented width.
		pivot = aug[col][col]
		for j = 0; j < 2*n; j++ {
			aug[col][j] /= pivot
		}

		// Eliminate this column from every other row (above and below).
		for r = 0; r < n; r++ {
			if r == col {
				continue
			}
			factor = aug[r][col]
			if math.Abs(factor) < pivotEps {
				continue
			}
			for j = 0; j < 2*n; j++ {
				aug[r][j] -= factor * aug[col][j]
			}
		}
	}

	// Extract the right half.
	inv := make([][]float64, n)
	for i = 0; i < n; i++ {
		inv[i] = make([]float64, n)
		copy(inv[i], aug[i][n:])
	}

	return inv, nil
}
