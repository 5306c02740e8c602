// Copyright 2024 The Scientific Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scientific

// negSci flips the sign of a non-zero value; zero is its own negation.
func negSci(s sci) sci {
	if s.isZero() {
		return s
	}
	s.sign = s.sign.neg()
	return s
}

func absSci(s sci) sci {
	s.sign = positive
	return s
}

// addSci computes a+b exactly; the result mantissa is never rounded, only
// normalized (spec.md §8 property 4). Grounded on
// original_source/scientific/src/math/add.rs and db47h/decimal's dec.add,
// restyled for a digit-per-byte mantissa.
func addSci(a, b sci) sci {
	if a.isZero() {
		return b
	}
	if b.isZero() {
		return a
	}
	if a.sign == b.sign {
		return addMagnitude(a, b)
	}
	switch compare(a, b, false) {
	case 0:
		return sciZero
	case 1:
		return subMagnitude(a, b)
	default:
		return subMagnitude(b, a)
	}
}

func subSci(a, b sci) sci {
	return addSci(a, negSci(b))
}

// addMagnitude adds two non-zero values that share the same sign,
// returning a value with that sign. The two mantissas are conceptually
// aligned on a shared place-value axis spanning from the lower of the two
// exponents up to the higher of the two exponent0 values, with one spare
// leading slot to absorb a final carry.
func addMagnitude(a, b sci) sci {
	hiExp := a.exponent0()
	if be := b.exponent0(); be > hiExp {
		hiExp = be
	}
	loExp := a.exponent()
	if be := b.exponent(); be < loExp {
		loExp = be
	}

	total := int(hiExp - loExp)
	buf := make([]byte, total+1)

	offsetA := int(hiExp-a.exponent0()) + 1
	for k, d := range a.mant {
		buf[offsetA+k] += d
	}
	offsetB := int(hiExp-b.exponent0()) + 1
	for k, d := range b.mant {
		buf[offsetB+k] += d
	}

	carry := byte(0)
	for i := len(buf) - 1; i >= 0; i-- {
		v := buf[i] + carry
		buf[i] = v % 10
		carry = v / 10
	}

	b2 := &builder{sg: a.sign, mant: buf, exp: loExp}
	return b2.finish()
}

// subMagnitude subtracts the smaller-magnitude operand from the
// larger-magnitude one; the caller must have already established, via
// compare with useSign false, that larger >= smaller. The result takes
// larger's sign.
func subMagnitude(larger, smaller sci) sci {
	hiExp := larger.exponent0()
	loExp := larger.exponent()
	if se := smaller.exponent(); se < loExp {
		loExp = se
	}

	total := int(hiExp - loExp)
	raw := make([]int8, total)

	offsetL := int(hiExp - larger.exponent0())
	for k, d := range larger.mant {
		raw[offsetL+k] += int8(d)
	}
	offsetS := int(hiExp - smaller.exponent0())
	for k, d := range smaller.mant {
		raw[offsetS+k] -= int8(d)
	}

	buf := make([]byte, total)
	borrow := int8(0)
	for i := total - 1; i >= 0; i-- {
		v := raw[i] - borrow
		if v < 0 {
			v += 10
			borrow = 1
		} else {
			borrow = 0
		}
		buf[i] = byte(v)
	}

	b2 := &builder{sg: larger.sign, mant: buf, exp: loExp}
	return b2.finish()
}
