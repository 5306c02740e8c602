// Copyright 2024 The Scientific Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scientific

// divRaw performs long division of a by b via repeated subtraction --
// the standard schoolbook technique spec.md §4.6 requires, with no
// digit-estimation shortcut -- producing one more digit than prec asks
// for. The extra "guard" digit, plus a trailing sticky digit 1 whenever
// the final remainder is non-zero, give callers (divTruncateSci,
// divRoundSci, divRPSPSci) everything roundSci and friends need to
// finish the job. Grounded on
// original_source/scientific/src/math/div.rs.
func divRaw(a, b sci, prec Precision) (raw sci, targetExp int64, err error) {
	if b.isZero() {
		return sciZero, 0, ErrDivisionByZero
	}
	if a.isZero() {
		return sciZero, 0, nil
	}

	sg := a.sign.xor(b.sign)
	aMant := a.mant
	bMant := b.mant
	la := len(aMant)
	aexp := a.exponent()
	bexp := b.exponent()

	remainder := []byte{0}
	var emitted []byte
	foundFirst := false
	var firstDigitExp int64
	totalToEmit := 0

	for k := 0; ; k++ {
		var next byte
		if k < la {
			next = aMant[k]
		}
		remainder = append(remainder, next)
		remainder = trimLeadingZeroMag(remainder)

		var q byte
		for q < 9 && cmpMag(remainder, bMant) >= 0 {
			remainder = subMag(remainder, bMant)
			q++
		}

		if !foundFirst {
			if q == 0 {
				continue
			}
			foundFirst = true
			firstDigitExp = int64(la-1-k) + (aexp - bexp)
			if prec.kind == precisionDigits {
				targetExp = firstDigitExp - prec.n + 1
			} else {
				targetExp = -prec.n
			}
			kept := firstDigitExp - targetExp + 1
			if kept < 0 {
				kept = 0
			}
			totalToEmit = int(kept) + 1
		}

		emitted = append(emitted, q)
		if len(emitted) >= totalToEmit {
			// A non-zero remainder, or dividend digits not yet brought
			// down, means the exact quotient continues past the guard
			// digit: record that as one trailing non-zero sticky digit.
			if k < la-1 || len(remainder) > 1 || remainder[0] != 0 {
				emitted = append(emitted, 1)
			}
			break
		}
	}

	lastExp := firstDigitExp - int64(len(emitted)-1)
	raw = trimRounded(sg, emitted, lastExp)
	return raw, targetExp, nil
}

func divTruncateSci(a, b sci, prec Precision) (sci, error) {
	raw, targetExp, err := divRaw(a, b, prec)
	if err != nil {
		return sciZero, err
	}
	return truncateSci(raw, targetExp), nil
}

func divRoundSci(a, b sci, prec Precision, mode Rounding) (sci, error) {
	raw, targetExp, err := divRaw(a, b, prec)
	if err != nil {
		return sciZero, err
	}
	return roundSci(raw, targetExp, mode), nil
}

func divRPSPSci(a, b sci, prec Precision) (sci, error) {
	raw, targetExp, err := divRaw(a, b, prec)
	if err != nil {
		return sciZero, err
	}
	return roundRPSP(raw, targetExp), nil
}

// divRemSci returns a rounded quotient along with its exact remainder
// a - quotient*b, so that callers can detect how far the rounded result
// is from the exact value without dividing twice.
func divRemSci(a, b sci, prec Precision, mode Rounding) (quotient, remainder sci, err error) {
	q, err := divRoundSci(a, b, prec, mode)
	if err != nil {
		return sciZero, sciZero, err
	}
	r := subSci(a, mulSci(q, b))
	return q, r, nil
}

// trimLeadingZeroMag strips leading zero digits from a magnitude-only
// digit slice (no sign, leading zeros allowed), always leaving at least
// one digit.
func trimLeadingZeroMag(x []byte) []byte {
	z := 0
	for z < len(x)-1 && x[z] == 0 {
		z++
	}
	return x[z:]
}

// cmpMag compares two magnitude-only digit slices that may carry leading
// zeros.
func cmpMag(x, y []byte) int {
	x = trimLeadingZeroMag(x)
	y = trimLeadingZeroMag(y)
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := range x {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// subMag returns x-y for magnitude-only digit slices, assuming x >= y.
// The result keeps at least one digit even when the difference is zero.
func subMag(x, y []byte) []byte {
	n := len(x)
	yy := make([]byte, n)
	copy(yy[n-len(y):], y)

	res := make([]byte, n)
	borrow := int8(0)
	for i := n - 1; i >= 0; i-- {
		v := int8(x[i]) - int8(yy[i]) - borrow
		if v < 0 {
			v += 10
			borrow = 1
		} else {
			borrow = 0
		}
		res[i] = byte(v)
	}
	return trimLeadingZeroMag(res)
}
