// Copyright 2024 The Scientific Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scientific

import (
	"strconv"
	"strings"
)

// plainString renders the value the way Display does: a leading-zero
// point form when the value's magnitude is tiny (e0 in [-1,0]), a plain
// integer-plus-fraction form for everyday magnitudes (e0 in [2,7]), and
// scientific notation otherwise. Grounded on
// original_source/scientific/src/types/display.rs's nz_display.
func plainString(sg sign, mant []byte, exp int64) string {
	if len(mant) == 0 {
		return "0"
	}

	var sb strings.Builder
	if sg.isNegative() {
		sb.WriteByte('-')
	}

	length := int64(len(mant))
	e0 := exp + length

	switch {
	case e0 >= -1 && e0 <= 0:
		sb.WriteString("0.")
		for i := e0; i < 0; i++ {
			sb.WriteByte('0')
		}
		writeDigits(&sb, mant)

	case e0 >= 2 && e0 <= 7:
		mid := e0
		if mid > length {
			mid = length
		}
		writeDigits(&sb, mant[:mid])
		for i := mid; i < e0; i++ {
			sb.WriteByte('0')
		}
		if length > e0 {
			sb.WriteByte('.')
			writeDigits(&sb, mant[e0:])
		}

	default:
		sb.WriteByte('0' + mant[0])
		if length > 1 {
			sb.WriteByte('.')
			writeDigits(&sb, mant[1:])
		}
		if e0 != 1 {
			sb.WriteByte('e')
			sb.WriteString(strconv.FormatInt(e0-1, 10))
		}
	}

	return sb.String()
}

// humanReadableString renders the value the way an "optional
// generic-serialization hook" in human-readable mode would (e.g.
// MarshalText/MarshalJSON): integers print without a decimal point, up
// to three trailing zeros; a value whose fractional digits still fit
// within its own length prints with an implied leading zero; anything
// else falls back to scientific notation written as 0.d0d1...e{e0}.
// Grounded on
// original_source/scientific/src/types/serde_ser.rs's s_display_1e.
func humanReadableString(sg sign, mant []byte, exp int64) string {
	if len(mant) == 0 {
		return "0"
	}

	var sb strings.Builder
	if sg.isNegative() {
		sb.WriteByte('-')
	}

	length := int64(len(mant))

	switch {
	case exp >= 0 && exp <= 3:
		writeDigits(&sb, mant)
		for i := int64(0); i < exp; i++ {
			sb.WriteByte('0')
		}

	case exp < 0 && -exp <= length:
		dot := length + exp
		if -exp == length {
			sb.WriteByte('0')
		}
		for i, d := range mant {
			if int64(i) == dot {
				sb.WriteByte('.')
			}
			sb.WriteByte('0' + d)
		}

	default:
		sb.WriteString("0.")
		writeDigits(&sb, mant)
		sb.WriteByte('e')
		sb.WriteString(strconv.FormatInt(exp+length, 10))
	}

	return sb.String()
}

// scientificString renders the value as d.ddd...e±N, with exactly one
// digit before the point. This is what GoString and the Debug-style
// printer use.
func scientificString(sg sign, mant []byte, exponent1 int64) string {
	if len(mant) == 0 {
		return "0"
	}

	var sb strings.Builder
	if sg.isNegative() {
		sb.WriteByte('-')
	}
	sb.WriteByte('0' + mant[0])
	if len(mant) > 1 {
		sb.WriteByte('.')
		writeDigits(&sb, mant[1:])
	}
	sb.WriteByte('e')
	sb.WriteString(strconv.FormatInt(exponent1, 10))
	return sb.String()
}

func writeDigits(sb *strings.Builder, digits []byte) {
	for _, d := range digits {
		sb.WriteByte('0' + d)
	}
}
