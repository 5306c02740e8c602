// Copyright 2024 The Scientific Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scientific

// assertInvariants gates extra invariant checks used while developing the
// library. Mirrors the debugDecimal constant in db47h/decimal.
const assertInvariants = false

// sci is the core invariant-bearing number: (-1)^sign * mantissa * 10^exp.
//
// mant holds one decimal digit (0..=9) per byte, most-significant digit
// first. A non-zero sci has len(mant) > 0, mant[0] in 1..=9, mant[last] in
// 1..=9, and every digit in 0..=9. The zero value of sci (len(mant) == 0)
// represents the number 0; its sign and exp fields are then irrelevant and
// the exponent()/exponent0()/exponent1() getters report as if exp == 1, per
// the zero-form convention (the exp field of the zero-value struct itself
// is left at 0).
type sci struct {
	sign sign
	mant []byte
	exp  int64
	own  *owner
}

var (
	mantissaOne  = []byte{1}
	mantissaFive = []byte{5}
)

var (
	sciZero     = sci{}
	sciOne      = sci{sign: positive, mant: mantissaOne, exp: 0, own: nil}
	sciNegOne   = sci{sign: negative, mant: mantissaOne, exp: 0, own: nil}
	sciPointFiv = sci{sign: positive, mant: mantissaFive, exp: -1, own: nil}
)

// sciOneAt builds the static value ±1*10^exp, sharing the static mantissa
// of one, so it never allocates (used e.g. for the initial square root
// guess).
func sciOneAt(sg sign, exp int64) sci {
	return sci{sign: sg, mant: mantissaOne, exp: exp, own: nil}
}

func (s sci) isZero() bool { return len(s.mant) == 0 }

func (s sci) length() int64 { return int64(len(s.mant)) }

func (s sci) exponent() int64 {
	if s.isZero() {
		return 1
	}
	return s.exp
}

// exponent0 is one greater than the exponent of the most significant digit:
// the value equals 0.d0d1...d(len-1) * 10^exponent0.
func (s sci) exponent0() int64 { return s.exponent() + s.length() }

// exponent1 is the exponent when the number is written with exactly one
// digit before the decimal point.
func (s sci) exponent1() int64 { return s.exponent() + s.length() - 1 }

func (s sci) decimals() int64 { return -s.exponent() }

func (s sci) isSignNegative() bool { return !s.isZero() && s.sign.isNegative() }

func (s sci) isSignPositive() bool { return !s.isZero() && !s.sign.isNegative() }

// validate panics if s violates the canonical-form invariants (spec.md §8
// property 1). Only active when assertInvariants is true.
func (s sci) validate() {
	if !assertInvariants {
		return
	}
	if s.isZero() {
		return
	}
	if len(s.mant) == 0 {
		panic("scientific: invariant violated: non-zero value with empty mantissa")
	}
	if s.mant[0] < 1 || s.mant[0] > 9 {
		panic("scientific: invariant violated: leading zero digit")
	}
	if s.mant[len(s.mant)-1] < 1 || s.mant[len(s.mant)-1] > 9 {
		panic("scientific: invariant violated: trailing zero digit")
	}
	for _, d := range s.mant {
		if d > 9 {
			panic("scientific: invariant violated: digit out of range")
		}
	}
}
