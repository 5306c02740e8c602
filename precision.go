// Copyright 2024 The Scientific Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scientific

// precisionKind selects whether a Precision counts significant digits or
// digits after the decimal point.
type precisionKind int8

const (
	precisionDigits precisionKind = iota
	precisionDecimals
)

// Precision describes how many digits an inexact operation (division,
// square root, rounding) should retain. It comes in two flavors: Digits(n)
// keeps n significant digits regardless of magnitude, and Decimals(n)
// keeps digits down to 10^-n, i.e. n digits after the decimal point.
// Grounded on original_source/scientific/src/ops/precision.rs.
type Precision struct {
	kind precisionKind
	n    int64
}

// Digits requests n significant digits.
func Digits(n int64) Precision { return Precision{kind: precisionDigits, n: n} }

// Decimals requests digits down to 10^-n (n may be negative to round to a
// power of ten above the decimal point).
func Decimals(n int64) Precision { return Precision{kind: precisionDecimals, n: n} }

// INTEGER requests rounding to a whole number (Decimals(0)).
var INTEGER = Decimals(0)

// F64 is the conventional working precision for IEEE 754 double
// arithmetic: 16 significant digits.
var F64 = Digits(16)

// Add shifts the requested precision by n digits, keeping the same
// flavor. Used by iterative algorithms (Sqrt) that request a little extra
// precision on intermediate steps to absorb rounding error.
func (p Precision) Add(n int64) Precision {
	p.n += n
	return p
}

// Sub shifts the requested precision down by n digits.
func (p Precision) Sub(n int64) Precision {
	p.n -= n
	return p
}

// targetExponent returns the exponent of the least significant digit that
// should be retained when rounding v to this precision.
func (p Precision) targetExponent(v sci) int64 {
	if p.kind == precisionDecimals {
		return -p.n
	}
	if v.isZero() {
		return -p.n + 1
	}
	return v.exponent1() - p.n + 1
}
