// Copyright 2024 The Scientific Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scientific

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) sci {
	t.Helper()
	v, err := parseSci(s)
	require.NoError(t, err)
	return v
}

func TestAddSub(t *testing.T) {
	cases := []struct{ a, b, sum string }{
		{"1", "1", "2"},
		{"1.5", "2.5", "4"},
		{"100", "-1", "99"},
		{"1e10", "1e-10", "1.00000000000000000001e10"},
		{"-5", "-5", "-10"},
		{"5", "-5", "0"},
		{"0.1", "0.2", "0.3"},
		{"999", "1", "1000"},
	}
	for _, c := range cases {
		t.Run(c.a+"+"+c.b, func(t *testing.T) {
			a, b := mustParse(t, c.a), mustParse(t, c.b)
			sum := addSci(a, b)
			require.Equal(t, c.sum, plainString(sum.sign, sum.mant, sum.exponent()))

			back := subSci(sum, b)
			require.True(t, equal(back, a), "sum-b should reconstruct a: got %s", plainString(back.sign, back.mant, back.exponent()))
		})
	}
}

func TestAddSubAgainstIntArithmetic(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		x := int64(r.Intn(2_000_000) - 1_000_000)
		y := int64(r.Intn(2_000_000) - 1_000_000)
		sum := addSci(sciFromInt64(x), sciFromInt64(y))
		got, err := sciToInt64(sum)
		require.NoError(t, err)
		require.Equal(t, x+y, got)

		diff := subSci(sciFromInt64(x), sciFromInt64(y))
		got, err = sciToInt64(diff)
		require.NoError(t, err)
		require.Equal(t, x-y, got)
	}
}

func TestMulAgainstIntArithmetic(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 2000; i++ {
		x := int64(r.Intn(200_000) - 100_000)
		y := int64(r.Intn(200_000) - 100_000)
		prod := mulSci(sciFromInt64(x), sciFromInt64(y))
		got, err := sciToInt64(prod)
		require.NoError(t, err)
		require.Equal(t, x*y, got)
	}
}

func TestMulByZero(t *testing.T) {
	require.True(t, mulSci(mustParse(t, "12345"), sciZero).isZero())
}

func TestPowi(t *testing.T) {
	two := sciFromInt64(2)
	got := powiSci(two, 10)
	v, err := sciToInt64(got)
	require.NoError(t, err)
	require.Equal(t, int64(1024), v)

	require.True(t, powiSci(sciZero, 5).isZero())
	require.True(t, equal(powiSci(two, 0), sciOne))
}

func TestCompare(t *testing.T) {
	require.Equal(t, -1, compare(mustParse(t, "1"), mustParse(t, "2"), true))
	require.Equal(t, 1, compare(mustParse(t, "2"), mustParse(t, "1"), true))
	require.Equal(t, 0, compare(mustParse(t, "1.50"), mustParse(t, "1.5"), true))
	require.Equal(t, 1, compare(mustParse(t, "1"), mustParse(t, "-1"), true))
	require.Equal(t, -1, compare(mustParse(t, "-2"), mustParse(t, "-1"), true))
	require.Equal(t, 0, compare(sciZero, sciZero, true))
}

func TestShift(t *testing.T) {
	v := mustParse(t, "1.5")
	up := shiftSci(v, 2)
	require.Equal(t, "150", plainString(up.sign, up.mant, up.exponent()))
	down := shiftSci(v, -2)
	require.Equal(t, "0.015", plainString(down.sign, down.mant, down.exponent()))
}
