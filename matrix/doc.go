// Package matrix offers dense float64 matrix primitives.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix with safe accessors (At/Set return errors,
//     never panic) and legal zero-sized shapes (the 0×0 null matrix).
//   - Pure kernels: Scale, Add, Sub, Transpose, Mul and Inverse. Every kernel
//     reads its operands and returns a freshly allocated *Dense.
//   - Inverse via Gauss-Jordan elimination with first-nonzero partial pivoting
//     and exact-zero pivot tests.
//   - Interop with gonum (ToGonum, FromGonum).
//
// Errors are package sentinels (ErrDimensionMismatch, ErrNonSquare,
// ErrSingular, ...) wrapped with the operation name; match them with errors.Is.
//
// Kernels share no state, so concurrent callers may use any operation on
// shared read-only inputs without synchronization.
package matrix
