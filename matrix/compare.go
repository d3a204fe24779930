// SPDX-License-Identifier: MIT

package matrix

import "math"

// Equal reports whether a and b have the same shape and exactly equal entries.
// NaN never equals NaN. Two nil matrices are not equal; neither is a nil and a
// non-nil one. Accessor failures count as inequality.
// Complexity: O(r*c).
func Equal(a, b Matrix) bool {
	return compare(a, b, func(x, y float64) bool { return x == y })
}

// EqualApprox reports whether a and b have the same shape and every entry
// pair satisfies |a-b| <= eps, where eps comes from WithEpsilon
// (DefaultEpsilon otherwise). Infinities of the same sign compare equal.
// Complexity: O(r*c).
func EqualApprox(a, b Matrix, opts ...Option) bool {
	eps := gatherOptions(opts...).eps

	return compare(a, b, func(x, y float64) bool {
		if x == y {
			return true
		}

		return math.Abs(x-y) <= eps
	})
}

// compare walks both matrices in i→j order and applies eq to each pair.
func compare(a, b Matrix, eq func(x, y float64) bool) bool {
	if ValidateBinarySameShape(a, b) != nil {
		return false
	}
	da, err := asDense(a, "Equal")
	if err != nil {
		return false
	}
	db, err := asDense(b, "Equal")
	if err != nil {
		return false
	}
	for idx, v := range da.data {
		if !eq(v, db.data[idx]) {
			return false
		}
	}

	return true
}
