// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum.org/v1/gonum/mat.
//
// Both directions copy; no buffer is ever shared between the two libraries.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	ctxToGonum   = "ToGonum"
	ctxFromGonum = "FromGonum"
)

// ToGonum copies m into a new *mat.Dense.
// gonum cannot represent zero-sized dense matrices, so shapes with zero rows
// or zero columns are rejected with ErrBadShape.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape, accessor errors from a generic Matrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	d, err := asDense(m, ctxToGonum)
	if err != nil {
		return nil, err
	}
	if d.r == 0 || d.c == 0 {
		return nil, matrixErrorf(ctxToGonum, fmt.Errorf("%dx%d: %w", d.r, d.c, ErrBadShape))
	}
	buf := make([]float64, len(d.data))
	copy(buf, d.data)

	return mat.NewDense(d.r, d.c, buf), nil
}

// FromGonum copies any gonum matrix into a new Dense.
// The numeric policy from opts applies to every copied entry.
//
// Errors:
//   - ErrNilMatrix (g == nil), ErrNaNInf (non-finite entry under the policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromGonum(g mat.Matrix, opts ...Option) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(ctxFromGonum, ErrNilMatrix)
	}
	if gd, ok := g.(*mat.Dense); ok && gd == nil {
		return nil, matrixErrorf(ctxFromGonum, ErrNilMatrix)
	}

	rows, cols := g.Dims()
	out, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxFromGonum, err)
	}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if err = out.Set(i, j, g.At(i, j)); err != nil {
				return nil, matrixErrorf(ctxFromGonum, err)
			}
		}
	}

	return out, nil
}
