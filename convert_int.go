// Copyright 2024 The Scientific Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scientific

import "math"

// digitsOfUint64 renders v as a most-significant-digit-first byte slice,
// never empty (v == 0 yields a single zero digit, trimmed away by the
// caller's normalization).
func digitsOfUint64(v uint64) []byte {
	if v == 0 {
		return []byte{0}
	}
	var tmp [20]byte
	i := len(tmp)
	for v > 0 {
		i--
		tmp[i] = byte(v % 10)
		v /= 10
	}
	return append([]byte(nil), tmp[i:]...)
}

func sciFromUint64(sg sign, mag uint64) sci {
	if mag == 0 {
		return sciZero
	}
	return trimParsedDigits(sg, digitsOfUint64(mag), 0)
}

// sciFromInt64 converts a native int64, handling math.MinInt64 whose
// magnitude does not fit back into an int64.
func sciFromInt64(v int64) sci {
	if v == 0 {
		return sciZero
	}
	if v == math.MinInt64 {
		return sciFromUint64(negative, uint64(math.MaxInt64)+1)
	}
	if v < 0 {
		return sciFromUint64(negative, uint64(-v))
	}
	return sciFromUint64(positive, uint64(v))
}

// magnitudeUint64 reports the integer magnitude of s (which must satisfy
// s.exponent() >= 0) as a uint64, and whether it fit without overflow.
func magnitudeUint64(s sci) (uint64, bool) {
	if s.isZero() {
		return 0, true
	}
	var v uint64
	for _, d := range s.mant {
		if v > (math.MaxUint64-uint64(d))/10 {
			return 0, false
		}
		v = v*10 + uint64(d)
	}
	for i := int64(0); i < s.exponent(); i++ {
		if v > math.MaxUint64/10 {
			return 0, false
		}
		v *= 10
	}
	return v, true
}

func sciToInt64(s sci) (int64, error) {
	if s.isZero() {
		return 0, nil
	}
	if s.exponent() < 0 {
		return 0, ErrNumberNotInteger
	}
	mag, ok := magnitudeUint64(s)
	if !ok {
		return 0, ErrNumberTooLarge
	}
	if s.sign.isNegative() {
		if mag > uint64(math.MaxInt64)+1 {
			return 0, ErrNumberTooLarge
		}
		if mag == uint64(math.MaxInt64)+1 {
			return math.MinInt64, nil
		}
		return -int64(mag), nil
	}
	if mag > uint64(math.MaxInt64) {
		return 0, ErrNumberTooLarge
	}
	return int64(mag), nil
}

func sciToUint64(s sci) (uint64, error) {
	if s.isZero() {
		return 0, nil
	}
	if s.exponent() < 0 {
		return 0, ErrNumberNotInteger
	}
	if s.sign.isNegative() {
		return 0, ErrNumberNegative
	}
	mag, ok := magnitudeUint64(s)
	if !ok {
		return 0, ErrNumberTooLarge
	}
	return mag, nil
}
