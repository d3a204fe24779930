// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmat/matrix"
)

// hide wraps a Matrix so the concrete *Dense type is invisible to kernels,
// forcing the generic At-based fallback path.
type hide struct{ matrix.Matrix }

// MustFromRows BUILDS a *Dense from a literal, failing the test on error.
func MustFromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err, "NewDenseFromRows(%v)", rows)

	return m
}

// MustDense RETURNS a zero r×c *Dense.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// IdentityDense RETURNS the n×n identity.
func IdentityDense(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	require.NoError(t, err, "NewIdentity(%d)", n)

	return m
}

// RandFilledDense RETURNS an r×c *Dense with deterministic U(-1,1) entries.
func RandFilledDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()*2 - 1
		}
	}

	return MustFromRows(t, rows)
}

// DiagDominantDense RETURNS a random n×n matrix made strictly diagonally
// dominant, hence invertible and well conditioned.
func DiagDominantDense(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rows := RandFilledDense(t, n, n, seed).RawRows()
	for i := 0; i < n; i++ {
		rows[i][i] += float64(n) + 1
	}

	return MustFromRows(t, rows)
}

// CompareExact ASSERTS that m has exactly the shape and entries of want.
func CompareExact(t testing.TB, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "row count")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "column count")
		for j := range want[i] {
			require.Equal(t, want[i][j], MustAt(t, m, i, j), "entry [%d,%d]", i, j)
		}
	}
}

// CompareClose ASSERTS same shape and |a-b| <= tol for every entry.
func CompareClose(t testing.TB, want, got matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "row count")
	require.Equal(t, want.Cols(), got.Cols(), "column count")
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			require.InDelta(t, MustAt(t, want, i, j), MustAt(t, got, i, j), tol, "entry [%d,%d]", i, j)
		}
	}
}

// MustAt READS m[i,j], failing the test on error.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// MustDims ASSERTS the shape of m.
func MustDims(t testing.TB, m matrix.Matrix, r, c int) {
	t.Helper()
	require.Equal(t, r, m.Rows(), "rows")
	require.Equal(t, c, m.Cols(), "cols")
}
