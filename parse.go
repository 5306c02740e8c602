// Copyright 2024 The Scientific Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scientific

// maxParsedExponentMagnitude bounds the exponent digits accepted while
// parsing, well beyond any plausible real input, to keep the accumulator
// from overflowing int64 silently.
const maxParsedExponentMagnitude = 1 << 40

// parseSci parses decimal text of the form
//
//	[sign] digits [ . digits ] [ (e|E) [sign] digits ]
//
// requiring at least one digit either before or after the decimal point.
// Grounded on original_source/scientific/src/conv/from_str.rs.
func parseSci(str string) (sci, error) {
	n := len(str)
	if n == 0 {
		return sciZero, ErrParse
	}

	i := 0
	sg := positive
	switch str[0] {
	case '+':
		i++
	case '-':
		sg = negative
		i++
	}

	var digits []byte
	intCount := 0
	for i < n && isDigit(str[i]) {
		digits = append(digits, str[i]-'0')
		i++
		intCount++
	}

	fracCount := 0
	if i < n && str[i] == '.' {
		i++
		for i < n && isDigit(str[i]) {
			digits = append(digits, str[i]-'0')
			i++
			fracCount++
		}
	}

	if intCount == 0 && fracCount == 0 {
		return sciZero, ErrParse
	}

	exp := int64(-fracCount)

	if i < n && (str[i] == 'e' || str[i] == 'E') {
		i++
		esign := int64(1)
		if i < n && (str[i] == '+' || str[i] == '-') {
			if str[i] == '-' {
				esign = -1
			}
			i++
		}
		if i >= n || !isDigit(str[i]) {
			return sciZero, ErrParse
		}
		var e int64
		for i < n && isDigit(str[i]) {
			e = e*10 + int64(str[i]-'0')
			if e > maxParsedExponentMagnitude {
				return sciZero, ErrParse
			}
			i++
		}
		exp += esign * e
	}

	if i != n {
		return sciZero, ErrParse
	}

	return trimParsedDigits(sg, digits, exp), nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// trimParsedDigits normalizes a raw digit run straight from text (which
// may carry leading and trailing zeros) into canonical form.
func trimParsedDigits(sg sign, digits []byte, exp int64) sci {
	start := 0
	for start < len(digits) && digits[start] == 0 {
		start++
	}
	if start == len(digits) {
		return sciZero
	}
	end := len(digits)
	for end > start && digits[end-1] == 0 {
		end--
		exp++
	}
	d := append([]byte(nil), digits[start:end]...)
	return sci{sign: sg, mant: d, exp: exp, own: newOwner(len(d))}
}
