// Copyright 2024 The Scientific Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scientific

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundHalfModes(t *testing.T) {
	cases := []struct {
		mode Rounding
		in   string
		want string
	}{
		{RoundHalfUp, "1.5", "2"},
		{RoundHalfUp, "-1.5", "-1"},
		{RoundHalfDown, "1.5", "1"},
		{RoundHalfDown, "-1.5", "-2"},
		{RoundHalfTowardsZero, "1.5", "1"},
		{RoundHalfTowardsZero, "-1.5", "-1"},
		{RoundHalfAwayFromZero, "1.5", "2"},
		{RoundHalfAwayFromZero, "-1.5", "-2"},
		{RoundHalfToEven, "0.5", "0"},
		{RoundHalfToEven, "1.5", "2"},
		{RoundHalfToEven, "2.5", "2"},
		{RoundHalfToOdd, "0.5", "1"},
		{RoundHalfToOdd, "1.5", "1"},
		{RoundHalfToOdd, "2.5", "3"},
		{RoundUp, "1.1", "2"},
		{RoundUp, "-1.1", "-1"},
		{RoundDown, "1.9", "1"},
		{RoundDown, "-1.9", "-2"},
		{RoundTowardsZero, "1.9", "1"},
		{RoundTowardsZero, "-1.9", "-1"},
		{RoundAwayFromZero, "1.1", "2"},
		{RoundAwayFromZero, "-1.1", "-2"},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			v := mustParse(t, c.in)
			r := roundSci(v, 0, c.mode)
			require.Equal(t, c.want, plainString(r.sign, r.mant, r.exponent()))
		})
	}
}

func TestRoundNoOpWhenAlreadyPrecise(t *testing.T) {
	v := mustParse(t, "1.25")
	r := roundSci(v, -3, RoundHalfToEven)
	require.True(t, equal(v, r))
}

func TestRoundRPSPCutoffDigitZeroOrFive(t *testing.T) {
	// Decimals(-1) targets exponent 1 (the tens place); RPSP keeps one
	// extra digit, so it decides on the ones digit instead.
	v := mustParse(t, "22.5")
	r := roundRPSP(v, 1)
	require.Equal(t, "22", plainString(r.sign, r.mant, r.exponent()))

	v = mustParse(t, "25.5")
	r = roundRPSP(v, 1)
	require.Equal(t, "26", plainString(r.sign, r.mant, r.exponent()))
}

func TestTruncate(t *testing.T) {
	v := mustParse(t, "-1.999")
	r := truncateSci(v, 0)
	require.Equal(t, "-1", plainString(r.sign, r.mant, r.exponent()))
}
