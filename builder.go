// Copyright 2024 The Scientific Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scientific

// shrinkWordBytes and shrinkThresholdWords mirror the shrink-to-fit policy
// described in spec.md §3: a result buffer that ends up using less than a
// third of its allocated capacity, and whose capacity exceeds 20 "words",
// is reallocated to its exact size rather than kept oversized. A word here
// is taken as 8 bytes (a 64-bit machine word), matching the unit the
// original Rust implementation measures allocations in.
const (
	shrinkWordBytes     = 8
	shrinkThresholdWords = 20
)

// builder accumulates a mantissa digit-by-byte into a freshly allocated
// buffer, then normalizes it into a canonical sci value. It is grounded on
// db47h/decimal's dec.make/norm pair, adapted from a word-sliced bignum to
// a digit-per-byte buffer as required by spec.md §2 and §4.6.
type builder struct {
	sg   sign
	mant []byte
	exp  int64
}

// newBuilder allocates a buffer of exactly length digits, all initially
// zero, for a result whose last digit has exponent exp (i.e. mant[0] is the digit
// at 10^(exp+length-1)). The caller fills mant through the returned slice
// and then calls finish.
func newBuilder(sg sign, length int, exp int64) *builder {
	return &builder{sg: sg, mant: make([]byte, length), exp: exp}
}

// digits exposes the backing slice for the caller to fill in.
func (b *builder) digits() []byte { return b.mant }

// finish trims leading and trailing zero digits, collapses an all-zero
// buffer to the canonical zero, applies the shrink policy, and returns the
// resulting value. After finish, b must not be reused.
func (b *builder) finish() sci {
	mant := b.mant
	exp := b.exp

	start := 0
	for start < len(mant) && mant[start] == 0 {
		start++
	}
	if start == len(mant) {
		return sciZero
	}

	end := len(mant)
	for end > start && mant[end-1] == 0 {
		end--
		exp++
	}

	trimmed := mant[start:end]
	if len(trimmed) == 0 {
		return sciZero
	}

	if cap(mant) > shrinkThresholdWords*shrinkWordBytes && len(trimmed)*3 < cap(mant) {
		tight := make([]byte, len(trimmed))
		copy(tight, trimmed)
		trimmed = tight
	}

	return sci{sign: b.sg, mant: trimmed, exp: exp, own: newOwner(cap(trimmed))}
}

// sciFromDigits builds a sci from a slice the caller already owns and has
// fully normalized (no leading or trailing zero digits, or empty for
// zero). Used by parse and decode paths that construct a digit buffer
// directly rather than through incremental arithmetic.
func sciFromDigits(sg sign, digits []byte, exp int64) sci {
	if len(digits) == 0 {
		return sciZero
	}
	return sci{sign: sg, mant: digits, exp: exp, own: newOwner(cap(digits))}
}
