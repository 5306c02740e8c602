// Copyright 2024 The Scientific Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scientific

import "math"

// Scientific is an arbitrary-precision decimal scientific number. The
// zero value denotes 0 and is ready to use.
type Scientific struct {
	v sci
}

// ZERO and ONE are convenience constants equivalent to the zero value and
// FromInt64(1) respectively.
var (
	ZERO = Scientific{}
	ONE  = Scientific{v: sciOne}
)

// FromString parses decimal text of the form
// [sign] digits [. digits] [(e|E) [sign] digits].
func FromString(str string) (Scientific, error) {
	v, err := parseSci(str)
	if err != nil {
		return Scientific{}, err
	}
	return Scientific{v: v}, nil
}

// MustFromString is FromString, panicking on a parse error. Intended for
// literals known at compile time to be valid.
func MustFromString(str string) Scientific {
	v, err := FromString(str)
	if err != nil {
		panic(err)
	}
	return v
}

func FromInt64(v int64) Scientific   { return Scientific{v: sciFromInt64(v)} }
func FromUint64(v uint64) Scientific { return Scientific{v: sciFromUint64(positive, v)} }
func FromInt(v int) Scientific       { return FromInt64(int64(v)) }
func FromInt32(v int32) Scientific   { return FromInt64(int64(v)) }
func FromUint32(v uint32) Scientific { return FromUint64(uint64(v)) }

// FromFloat64 converts f to the exact decimal value of its shortest
// round-tripping text representation. It fails if f is NaN or infinite.
func FromFloat64(f float64) (Scientific, error) {
	v, err := sciFromFloat64(f)
	if err != nil {
		return Scientific{}, err
	}
	return Scientific{v: v}, nil
}

func FromFloat32(f float32) (Scientific, error) {
	v, err := sciFromFloat32(f)
	if err != nil {
		return Scientific{}, err
	}
	return Scientific{v: v}, nil
}

// Bytes encodes s in the compact binary wire format.
func (s Scientific) Bytes() []byte { return bytesEncode(s.v) }

// FromBytes decodes data, which must hold exactly one value's worth of
// bytes produced by Bytes, with no extra trailing data.
func FromBytes(data []byte) (Scientific, error) {
	v, err := bytesDecode(data)
	if err != nil {
		return Scientific{}, err
	}
	return Scientific{v: v}, nil
}

// RawMantissaDigits returns a copy of the decimal digits of s, most
// significant first, with no leading or trailing zero (empty for zero).
func (s Scientific) RawMantissaDigits() []byte {
	return append([]byte(nil), s.v.mant...)
}

// FromRawParts builds a value directly from a sign, a digit slice (most
// significant first, already normalized), and an exponent. It is the
// inverse of RawMantissaDigits/Exponent, meant for callers reconstructing
// a value from a representation obtained elsewhere.
func FromRawParts(negative bool, digits []byte, exp int64) (Scientific, error) {
	if len(digits) == 0 {
		return Scientific{}, nil
	}
	for _, d := range digits {
		if d > 9 {
			return Scientific{}, ErrParse
		}
	}
	if digits[0] == 0 || digits[len(digits)-1] == 0 {
		return Scientific{}, ErrParse
	}
	sg := newSign(negative)
	d := append([]byte(nil), digits...)
	return Scientific{v: sci{sign: sg, mant: d, exp: exp, own: newOwner(len(d))}}, nil
}

// Arithmetic. Add, Sub and Mul are exact: they never round.

func (a Scientific) Add(b Scientific) Scientific { return Scientific{v: addSci(a.v, b.v)} }
func (a Scientific) Sub(b Scientific) Scientific { return Scientific{v: subSci(a.v, b.v)} }
func (a Scientific) Mul(b Scientific) Scientific { return Scientific{v: mulSci(a.v, b.v)} }
func (a Scientific) Neg() Scientific             { return Scientific{v: negSci(a.v)} }
func (a Scientific) Abs() Scientific             { return Scientific{v: absSci(a.v)} }
func (a Scientific) Powi(n uint64) Scientific    { return Scientific{v: powiSci(a.v, n)} }
func (a Scientific) Shl(n int64) Scientific      { return Scientific{v: shiftSci(a.v, n)} }
func (a Scientific) Shr(n int64) Scientific      { return Scientific{v: shiftSci(a.v, -n)} }

func (a *Scientific) AddAssign(b Scientific) { a.v = addSci(a.v, b.v) }
func (a *Scientific) SubAssign(b Scientific) { a.v = subSci(a.v, b.v) }
func (a *Scientific) MulAssign(b Scientific) { a.v = mulSci(a.v, b.v) }
func (a *Scientific) NegAssign()             { a.v = negSci(a.v) }
func (a *Scientific) AbsAssign()             { a.v = absSci(a.v) }

// DivTruncate computes a/b to prec digits, discarding anything beyond
// that precision.
func (a Scientific) DivTruncate(b Scientific, prec Precision) (Scientific, error) {
	v, err := divTruncateSci(a.v, b.v, prec)
	return Scientific{v: v}, err
}

// DivRound computes a/b to prec digits, rounding the final digit
// according to mode.
func (a Scientific) DivRound(b Scientific, prec Precision, mode Rounding) (Scientific, error) {
	v, err := divRoundSci(a.v, b.v, prec, mode)
	return Scientific{v: v}, err
}

// DivRPSP computes a/b to prec digits using RPSP rounding, suitable when
// the result will be rounded again later.
func (a Scientific) DivRPSP(b Scientific, prec Precision) (Scientific, error) {
	v, err := divRPSPSci(a.v, b.v, prec)
	return Scientific{v: v}, err
}

// DivRem returns a rounded quotient (as DivRound would) together with the
// exact remainder a - quotient*b.
func (a Scientific) DivRem(b Scientific, prec Precision, mode Rounding) (quotient, remainder Scientific, err error) {
	q, r, err := divRemSci(a.v, b.v, prec, mode)
	return Scientific{v: q}, Scientific{v: r}, err
}

func (a Scientific) SqrtTruncate(prec Precision) (Scientific, error) {
	v, err := sqrtTruncateSci(a.v, prec)
	return Scientific{v: v}, err
}

func (a Scientific) SqrtRound(prec Precision, mode Rounding) (Scientific, error) {
	v, err := sqrtRoundSci(a.v, prec, mode)
	return Scientific{v: v}, err
}

func (a Scientific) SqrtRPSP(prec Precision) (Scientific, error) {
	v, err := sqrtRPSPSci(a.v, prec)
	return Scientific{v: v}, err
}

func (a Scientific) Truncate(prec Precision) Scientific {
	return Scientific{v: truncateSci(a.v, prec.targetExponent(a.v))}
}

func (a *Scientific) TruncateAssign(prec Precision) {
	a.v = truncateSci(a.v, prec.targetExponent(a.v))
}

func (a Scientific) Round(prec Precision, mode Rounding) Scientific {
	return Scientific{v: roundSci(a.v, prec.targetExponent(a.v), mode)}
}

func (a *Scientific) RoundAssign(prec Precision, mode Rounding) {
	a.v = roundSci(a.v, prec.targetExponent(a.v), mode)
}

func (a Scientific) RoundRPSP(prec Precision) Scientific {
	return Scientific{v: roundRPSP(a.v, prec.targetExponent(a.v))}
}

func (a *Scientific) RoundRPSPAssign(prec Precision) {
	a.v = roundRPSP(a.v, prec.targetExponent(a.v))
}

// Len is the number of significant digits in the mantissa.
func (a Scientific) Len() int64 { return a.v.length() }

// Decimals is the number of digits after the decimal point (negative
// means the value is only precise to a power of ten above the point).
func (a Scientific) Decimals() int64 { return a.v.decimals() }

func (a Scientific) Exponent() int64  { return a.v.exponent() }
func (a Scientific) Exponent0() int64 { return a.v.exponent0() }
func (a Scientific) Exponent1() int64 { return a.v.exponent1() }

func (a Scientific) IsZero() bool         { return a.v.isZero() }
func (a Scientific) IsSignPositive() bool { return a.v.isSignPositive() }
func (a Scientific) IsSignNegative() bool { return a.v.isSignNegative() }

// Compare returns -1, 0 or 1 as a is less than, equal to, or greater
// than b.
func (a Scientific) Compare(b Scientific) int { return compare(a.v, b.v, true) }

func (a Scientific) Equal(b Scientific) bool          { return equal(a.v, b.v) }
func (a Scientific) Less(b Scientific) bool           { return a.Compare(b) < 0 }
func (a Scientific) LessOrEqual(b Scientific) bool    { return a.Compare(b) <= 0 }
func (a Scientific) Greater(b Scientific) bool        { return a.Compare(b) > 0 }
func (a Scientific) GreaterOrEqual(b Scientific) bool { return a.Compare(b) >= 0 }

// Hash returns a 64-bit digest suitable for use as a map key stand-in;
// see hashSci.
func (a Scientific) Hash() uint64 { return hashSci(a.v) }

// String renders a in plain decimal notation for everyday magnitudes,
// e.g. "123.045", and in scientific notation (e.g. "1e100") otherwise;
// see plainString.
func (a Scientific) String() string { return plainString(a.v.sign, a.v.mant, a.v.exponent()) }

// GoString renders a in scientific notation, e.g. "1.2345e10", for use by
// %#v and debug printing.
func (a Scientific) GoString() string {
	return scientificString(a.v.sign, a.v.mant, a.v.exponent1())
}

func (a Scientific) Int64() (int64, error)   { return sciToInt64(a.v) }
func (a Scientific) Uint64() (uint64, error) { return sciToUint64(a.v) }

func (a Scientific) Int() (int, error) {
	v, err := sciToInt64(a.v)
	if err != nil {
		return 0, err
	}
	if v < math.MinInt || v > math.MaxInt {
		return 0, ErrNumberTooLarge
	}
	return int(v), nil
}

func (a Scientific) Int32() (int32, error) {
	v, err := sciToInt64(a.v)
	if err != nil {
		return 0, err
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, ErrNumberTooLarge
	}
	return int32(v), nil
}

func (a Scientific) Uint32() (uint32, error) {
	v, err := sciToUint64(a.v)
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint32 {
		return 0, ErrNumberTooLarge
	}
	return uint32(v), nil
}

func (a Scientific) Float64() (float64, error) { return sciToFloat64(a.v) }
func (a Scientific) Float32() (float32, error) { return sciToFloat32(a.v) }
