// Copyright 2024 The Scientific Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scientific

// compare orders a and b. When useSign is false the comparison ignores
// both signs and treats a and b as magnitudes (used internally by addSci
// to order two operands of opposite sign before subtracting). Grounded on
// original_source/scientific/src/compare.rs.
func compare(a, b sci, useSign bool) int {
	switch {
	case a.isZero() && b.isZero():
		return 0
	case a.isZero():
		if useSign && b.sign.isNegative() {
			return 1
		}
		return -1
	case b.isZero():
		if useSign && a.sign.isNegative() {
			return -1
		}
		return 1
	}

	if useSign && a.sign != b.sign {
		if a.sign.isNegative() {
			return -1
		}
		return 1
	}

	if ae, be := a.exponent0(), b.exponent0(); ae != be {
		r := -1
		if ae > be {
			r = 1
		}
		if useSign && a.sign.isNegative() {
			r = -r
		}
		return r
	}

	return compareMantissa(a.mant, b.mant, useSign && a.sign.isNegative())
}

// compareMantissa compares two digit slices that share the same
// exponent0, i.e. the same place value for their first digit. Shorter
// mantissas are numerically smaller once the shared prefix matches,
// because exponent0 equal plus fewer digits means more trailing
// (unwritten) zero digits than the longer one -- that is only valid
// because both operands have already been confirmed to share exponent0.
func compareMantissa(a, b []byte, negate bool) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			r := -1
			if a[i] > b[i] {
				r = 1
			}
			if negate {
				r = -r
			}
			return r
		}
	}
	r := 0
	switch {
	case len(a) < len(b):
		r = -1
	case len(a) > len(b):
		r = 1
	}
	if negate {
		r = -r
	}
	return r
}

func equal(a, b sci) bool { return compare(a, b, true) == 0 }
