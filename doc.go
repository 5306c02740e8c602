// Copyright 2024 The Scientific Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package scientific implements arbitrary-precision decimal scientific
numbers: exact values of the form

	(-1)^sign * mantissa * 10^exponent

where mantissa is a finite sequence of decimal digits. Addition,
subtraction and multiplication never round: adding 1e1000 to 1e-1000
faithfully produces a 2001-digit mantissa. Division and square root are
inexact and therefore always take an explicit Precision.

The zero value of Scientific is ready to use and denotes 0:

	var z scientific.Scientific // z == 0

Scientific values are immutable at the public API except for the explicit
*Assign methods; all other operations return a new value and never modify
their arguments. Values are cheap to copy (no digit buffer is copied by a
plain Go assignment); arithmetic results allocate a fresh buffer.

Two flavors of rounding are available: Rounding (the ten standard modes
such as RoundHalfToEven) is used to produce a final result, and RPSP
("rounding to prepare for shorter precision") is used internally by
iterative algorithms such as Sqrt to avoid accumulating bias across many
intermediate roundings; see the Rounding type and the DivRPSP, SqrtRPSP
and RoundRPSP methods.

Values can be parsed from and printed to decimal text (FromString, String,
GoString), converted to and from native integer and floating point types,
and encoded to and decoded from a compact binary format (Bytes, FromBytes)
suitable for wire transmission or storage; a decoded buffer must hold
exactly one value's bytes, with no surrounding length framing.
*/
package scientific
