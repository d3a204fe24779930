// SPDX-License-Identifier: MIT

// Package matrix - Gauss-Jordan inversion.
//
// Purpose:
//   - Invert a square matrix by reducing the augmented workspace [M | I] to [I | M⁻¹].
//   - Keep the elimination deterministic: first-nonzero pivot search, fixed row order.
//
// Numeric policy:
//   - Pivot and elimination tests compare against exact zero (ZeroPivot). Near-singular
//     inputs with tiny nonzero pivots are treated as invertible and may lose precision;
//     callers that need robustness must check conditioning themselves.

package matrix

import "fmt"

// augmented is the n×2n elimination workspace owned by a single Inverse call.
// Row i occupies data[i*width : (i+1)*width]; the left half holds M, the right half I.
type augmented struct {
	n, width int
	data     []float64
}

// newAugmented copies src (n×n) into the left half and writes the identity
// into the right half.
func newAugmented(src *Dense) *augmented {
	n := src.r
	w := 2 * n
	aug := &augmented{n: n, width: w, data: make([]float64, n*w)}
	for i := 0; i < n; i++ {
		copy(aug.data[i*w:i*w+n], src.data[i*n:(i+1)*n])
		aug.data[i*w+n+i] = 1
	}

	return aug
}

// row returns row i as a slice aliasing the workspace.
func (a *augmented) row(i int) []float64 {
	return a.data[i*a.width : (i+1)*a.width]
}

// swapRows exchanges rows i and j in place.
func (a *augmented) swapRows(i, j int) {
	ri, rj := a.row(i), a.row(j)
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}

// findPivot returns the first row in [col, n) whose entry in column col is
// nonzero, or -1 when the column is zero from row col downward.
func (a *augmented) findPivot(col int) int {
	for j := col; j < a.n; j++ {
		if a.data[j*a.width+col] != ZeroPivot {
			return j
		}
	}

	return -1
}

// inverseHalf copies columns n..2n-1 into a new n×n Dense.
func (a *augmented) inverseHalf() *Dense {
	n := a.n
	res := newResult(n, n)
	for i := 0; i < n; i++ {
		copy(res.data[i*n:(i+1)*n], a.data[i*a.width+n:(i+1)*a.width])
	}

	return res
}

// Inverse computes M⁻¹ by Gauss-Jordan elimination with first-nonzero partial pivoting.
// Implementation:
//   - Stage 1: ValidateNotNil(m), ValidateSquare(m) (before any elimination work).
//   - Stage 2: Build the n×2n workspace [M | I].
//   - Stage 3: For each pivot column i:
//     a. take the first row j ≥ i with aug[j][i] != 0 and swap it into row i,
//     or fail with ErrSingular;
//     b. divide columns i..2n-1 of row i by the pivot;
//     c. for every row r ≠ i with aug[r][i] != 0, subtract aug[r][i]·row i
//     across the full width.
//   - Stage 4: Return the right half as a new n×n Dense.
//
// Behavior highlights:
//   - The input is never mutated; all row operations happen in the private workspace.
//   - The 0×0 matrix inverts to the 0×0 matrix.
//   - Inverse of the identity is exactly the identity (pivots are 1, nothing to eliminate).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (rows != cols), ErrSingular (no nonzero pivot candidate).
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for the workspace and result.
func Inverse(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	src, err := asDense(m, opInverse)
	if err != nil {
		return nil, err
	}
	aug := newAugmented(src)

	var (
		i, r, k, p    int
		pivot, factor float64
		pivotRow, cur []float64
	)
	for i = 0; i < aug.n; i++ {
		p = aug.findPivot(i)
		if p < 0 {
			return nil, matrixErrorf(opInverse, fmt.Errorf("pivot column %d: %w", i, ErrSingular))
		}
		if p != i {
			aug.swapRows(p, i)
		}

		// Entries left of column i are already zero in the pivot row.
		pivotRow = aug.row(i)
		pivot = pivotRow[i]
		for k = i; k < aug.width; k++ {
			pivotRow[k] /= pivot
		}

		for r = 0; r < aug.n; r++ {
			if r == i {
				continue
			}
			cur = aug.row(r)
			factor = cur[i]
			if factor == ZeroPivot {
				continue
			}
			for k = 0; k < aug.width; k++ {
				cur[k] -= factor * pivotRow[k]
			}
		}
	}

	return aug.inverseHalf(), nil
}
