// Package lvmat is a small in-memory toolkit for dense float64 matrices.
//
// What is inside:
//
//	matrix/: Dense storage with safe accessors, and pure kernels:
//		• Scale, Add, Sub      : entry-wise arithmetic
//		• Transpose, Mul       : shape-changing products
//		• Inverse              : Gauss-Jordan elimination on [M | I]
//		• ToGonum, FromGonum   : copy to and from gonum/mat
//
// Every kernel reads its operands and returns a new matrix, so values can be
// shared across goroutines freely. Failures are sentinel errors
// (ErrDimensionMismatch, ErrNonSquare, ErrSingular, ...) matched with errors.Is.
//
// Quick example:
//
//	m, _ := matrix.NewDenseFromRows([][]float64{{4, 7}, {2, 6}})
//	inv, err := matrix.Inverse(m)
//	// inv ≈ [[0.6, -0.7], [-0.2, 0.4]]
//
//	go get github.com/katalvlaran/lvmat
package lvmat
