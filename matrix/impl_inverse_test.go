// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmat/matrix"
)

// inverseCase is one entry of testdata/inverse_cases.yaml.
type inverseCase struct {
	Name string      `yaml:"name"`
	M    [][]float64 `yaml:"m"`
	Want [][]float64 `yaml:"want"`
	Tol  float64     `yaml:"tol"`
	Err  string      `yaml:"err"`
}

var inverseErrs = map[string]error{
	"singular":  matrix.ErrSingular,
	"nonsquare": matrix.ErrNonSquare,
}

func loadInverseCases(t *testing.T) []inverseCase {
	t.Helper()
	raw, err := os.ReadFile("testdata/inverse_cases.yaml")
	require.NoError(t, err)

	var cases []inverseCase
	require.NoError(t, yaml.Unmarshal(raw, &cases))
	require.NotEmpty(t, cases)

	return cases
}

func TestInverse_Fixtures(t *testing.T) {
	for _, tc := range loadInverseCases(t) {
		t.Run(tc.Name, func(t *testing.T) {
			m := MustFromRows(t, tc.M)
			for _, in := range []matrix.Matrix{m, hide{m}} {
				got, err := matrix.Inverse(in)
				if tc.Err != "" {
					want, ok := inverseErrs[tc.Err]
					require.True(t, ok, "unknown err kind %q", tc.Err)
					assert.ErrorIs(t, err, want)
					assert.Nil(t, got)
					continue
				}
				require.NoError(t, err)
				if tc.Tol == 0 {
					CompareExact(t, tc.Want, got)
				} else {
					CompareClose(t, MustFromRows(t, tc.Want), got, tc.Tol)
				}
			}
			CompareExact(t, tc.M, m)
		})
	}
}

func TestInverse_ErrorKindsAreDistinct(t *testing.T) {
	_, err := matrix.Inverse(MustFromRows(t, [][]float64{{1, 2}, {2, 4}}))
	require.ErrorIs(t, err, matrix.ErrSingular)
	assert.NotErrorIs(t, err, matrix.ErrNonSquare)
	assert.NotErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Inverse(MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	assert.NotErrorIs(t, err, matrix.ErrSingular)
	assert.NotErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Inverse(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestInverse_NonSquareDegenerate(t *testing.T) {
	_, err := matrix.Inverse(MustDense(t, 0, 3))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Inverse(MustDense(t, 3, 0))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestInverse_IdentityIsExact(t *testing.T) {
	for _, n := range []int{1, 2, 5} {
		got, err := matrix.Inverse(IdentityDense(t, n))
		require.NoError(t, err)
		assert.True(t, matrix.Equal(IdentityDense(t, n), got), "inverse(I_%d)", n)
	}
}

func TestInverse_Properties(t *testing.T) {
	for _, n := range []int{1, 2, 3, 6, 10} {
		for seed := int64(1); seed <= 3; seed++ {
			t.Run(fmt.Sprintf("n=%d/seed=%d", n, seed), func(t *testing.T) {
				m := DiagDominantDense(t, n, seed)
				inv, err := matrix.Inverse(m)
				require.NoError(t, err)

				right, err := matrix.Mul(m, inv)
				require.NoError(t, err)
				assert.True(t, matrix.EqualApprox(IdentityDense(t, n), right), "M·M⁻¹ ≈ I")

				left, err := matrix.Mul(inv, m)
				require.NoError(t, err)
				assert.True(t, matrix.EqualApprox(IdentityDense(t, n), left), "M⁻¹·M ≈ I")

				back, err := matrix.Inverse(inv)
				require.NoError(t, err)
				assert.True(t, matrix.EqualApprox(m, back), "(M⁻¹)⁻¹ ≈ M")
			})
		}
	}
}

func TestInverse_TinyPivotIsNotSingular(t *testing.T) {
	// Exact-zero pivoting: a tiny nonzero pivot is accepted.
	m := MustFromRows(t, [][]float64{{1e-300, 0}, {0, 1}})
	inv, err := matrix.Inverse(m)
	require.NoError(t, err)
	assert.InEpsilon(t, 1e300, MustAt(t, inv, 0, 0), 1e-12)
}

func TestInverse_AgreesWithGonum(t *testing.T) {
	for _, n := range []int{2, 4, 7} {
		m := DiagDominantDense(t, n, int64(100+n))
		got, err := matrix.Inverse(m)
		require.NoError(t, err)

		g, err := matrix.ToGonum(m)
		require.NoError(t, err)
		var oracle mat.Dense
		require.NoError(t, oracle.Inverse(g))

		want, err := matrix.FromGonum(&oracle)
		require.NoError(t, err)
		CompareClose(t, want, got, 1e-9)
	}
}

func TestInverse_ConcurrentSharedInput(t *testing.T) {
	m := DiagDominantDense(t, 8, 42)
	want, err := matrix.Inverse(m)
	require.NoError(t, err)

	const workers = 8
	results := make([]*matrix.Dense, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			results[w], errs[w] = matrix.Inverse(m)
		}(w)
	}
	wg.Wait()

	for w := 0; w < workers; w++ {
		require.NoError(t, errs[w])
		assert.True(t, matrix.Equal(want, results[w]), "worker %d", w)
	}
}

func TestInverse_ZeroDiagonalNeedsPivoting(t *testing.T) {
	for _, rows := range [][][]float64{
		{{0, 1}, {3, 2}},
		{{0, 1, 0}, {0, 0, 1}, {1, 0, 0}},
		{{0, 2, 3}, {1, 0, 4}, {5, 6, 0}},
		{{1, 2, 3}, {0, 0, 4}, {0, 5, 6}},
	} {
		m := MustFromRows(t, rows)
		inv, err := matrix.Inverse(m)
		require.NoError(t, err, "%v", rows)

		prod, err := matrix.Mul(m, inv)
		require.NoError(t, err)
		assert.True(t, matrix.EqualApprox(IdentityDense(t, m.Rows()), prod), "M·M⁻¹ ≈ I for %v", rows)
	}
}
