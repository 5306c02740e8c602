// Copyright 2024 The Scientific Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scientific

// shiftSci multiplies s by 10^n exactly, by moving the decimal point.
// Unlike mulSci this never touches the mantissa digits and therefore
// never allocates.
func shiftSci(s sci, n int64) sci {
	if s.isZero() {
		return s
	}
	s.exp += n
	return s
}
