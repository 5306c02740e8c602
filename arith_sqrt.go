// Copyright 2024 The Scientific Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scientific

// maxSqrtIterations bounds the Babylonian iteration. Each iteration
// roughly doubles the number of correct digits, so this comfortably
// covers any realistic requested Precision.
const maxSqrtIterations = 128

var sciTwo = sci{sign: positive, mant: []byte{2}, exp: 0}

// ceilHalf computes ceil(x/2) for any int64, relying on Go's
// truncate-towards-zero integer division already giving the ceiling for
// negative operands.
func ceilHalf(x int64) int64 {
	q := x / 2
	if x%2 != 0 && x > 0 {
		q++
	}
	return q
}

// sqrtCore runs Heron's (Babylonian) iteration to compute sqrt(a) to
// prec plus two guard digits, using RPSP at every intermediate step so
// that no iteration's rounding biases the next one. Iteration stops as
// soon as an iteration reproduces the previous guess exactly -- not when
// the guess merely stops decreasing, since RPSP rounding means the
// sequence need not be monotone near the end. Grounded on
// original_source/scientific/src/math/sqrt.rs.
func sqrtCore(a sci, prec Precision) (sci, error) {
	if a.isSignNegative() {
		return sciZero, ErrNumberNegative
	}
	if a.isZero() {
		return sciZero, nil
	}

	workPrec := prec.Add(2)
	guess := sciOneAt(positive, ceilHalf(a.exponent1()+1))

	for i := 0; i < maxSqrtIterations; i++ {
		q, err := divRPSPSci(a, guess, workPrec)
		if err != nil {
			return sciZero, err
		}
		sum := addSci(guess, q)
		next, err := divRPSPSci(sum, sciTwo, workPrec)
		if err != nil {
			return sciZero, err
		}
		if equal(next, guess) {
			guess = next
			break
		}
		guess = next
	}

	return guess, nil
}

func sqrtTruncateSci(a sci, prec Precision) (sci, error) {
	g, err := sqrtCore(a, prec)
	if err != nil {
		return sciZero, err
	}
	return truncateSci(g, prec.targetExponent(g)), nil
}

func sqrtRoundSci(a sci, prec Precision, mode Rounding) (sci, error) {
	g, err := sqrtCore(a, prec)
	if err != nil {
		return sciZero, err
	}
	return roundSci(g, prec.targetExponent(g), mode), nil
}

func sqrtRPSPSci(a sci, prec Precision) (sci, error) {
	g, err := sqrtCore(a, prec)
	if err != nil {
		return sciZero, err
	}
	return roundRPSP(g, prec.targetExponent(g)), nil
}
