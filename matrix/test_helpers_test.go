// SPDX-License-Identifier: MIT
// Package matrix_test contains shared test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures and float-tolerant comparisons.
//   - Keep all data finite and well-formed so numeric policy never interferes.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// floatTol is the comparison tolerance for elimination-based results.
const floatTol = 1e-9

// testSeed keeps the random fixtures reproducible across runs.
const testSeed int64 = 42

// requireMatInDelta asserts got equals want element-wise within floatTol.
func requireMatInDelta(t *testing.T, want, got [][]float64) {
	t.Helper()
	require.Len(t, got, len(want), "row count mismatch")
	for i := range want {
		require.Len(t, got[i], len(want[i]), "col count mismatch in row %d", i)
		for j := range want[i] {
			require.InDelta(t, want[i][j], got[i][j], floatTol, "element [%d,%d]", i, j)
		}
	}
}

// requireVecInDelta asserts got equals want element-wise within floatTol.
func requireVecInDelta(t *testing.T, want, got []float64) {
	t.Helper()
	require.Len(t, got, len(want), "length mismatch")
	for i := range want {
		require.InDelta(t, want[i], got[i], floatTol, "element [%d]", i)
	}
}

// randomSquare returns a deterministic n×n matrix with entries in [-5, 5).
// Diagonal dominance is added so the fixture stays comfortably invertible.
func randomSquare(rng *rand.Rand, n int) [][]float64 {
	m := make([][]float64, n)
	for i := 0; i < n; i++ {
		m[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			m[i][j] = rng.Float64()*10 - 5
		}
		m[i][i] += float64(n) * 10 // diagonal dominance
	}

	return m
}

// cloneMat deep-copies m so mutation checks can diff against the original.
func cloneMat(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = append([]float64(nil), row...)
	}

	return out
}
