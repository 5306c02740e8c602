// Copyright 2024 The Scientific Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scientific

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringFormatting(t *testing.T) {
	v := MustFromString("123.045")
	require.Equal(t, "123.045", v.String())
	require.Equal(t, "1.23045e2", v.GoString())
}

func TestZeroValueUsable(t *testing.T) {
	var z Scientific
	require.True(t, z.IsZero())
	require.Equal(t, "0", z.String())
	require.True(t, z.Equal(ZERO))

	sum := z.Add(ONE)
	require.True(t, sum.Equal(ONE))
}

func TestCompareOrdering(t *testing.T) {
	a := MustFromString("1.5")
	b := MustFromString("2.5")
	require.True(t, a.Less(b))
	require.True(t, b.Greater(a))
	require.True(t, a.LessOrEqual(a))
	require.True(t, a.GreaterOrEqual(a))
	require.False(t, a.Equal(b))
	require.Equal(t, -1, a.Compare(b))
}

func TestTextMarshalRoundTrip(t *testing.T) {
	v := MustFromString("-42.5000")
	buf, err := v.MarshalText()
	require.NoError(t, err)

	var got Scientific
	require.NoError(t, got.UnmarshalText(buf))
	require.True(t, v.Equal(got))
}

func TestBinaryMarshalRoundTrip(t *testing.T) {
	v := MustFromString("9999.001")
	buf, err := v.MarshalBinary()
	require.NoError(t, err)

	var got Scientific
	require.NoError(t, got.UnmarshalBinary(buf))
	require.True(t, v.Equal(got))

	err = got.UnmarshalBinary(append(buf, 0xff))
	require.Error(t, err)
}

func TestJSONRoundTrip(t *testing.T) {
	v := MustFromString("3.14159")
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.Equal(t, `"3.14159"`, string(data))

	var got Scientific
	require.NoError(t, json.Unmarshal(data, &got))
	require.True(t, v.Equal(got))
}

func TestRawPartsRoundTrip(t *testing.T) {
	v := MustFromString("-789.25")
	digits := v.RawMantissaDigits()
	got, err := FromRawParts(v.IsSignNegative(), digits, v.Exponent())
	require.NoError(t, err)
	require.True(t, v.Equal(got))
}

func TestFromRawPartsRejectsBadDigits(t *testing.T) {
	_, err := FromRawParts(false, []byte{0, 1, 2}, 0)
	require.Error(t, err)
	_, err = FromRawParts(false, []byte{1, 2, 10}, 0)
	require.Error(t, err)
}

func TestIntConversions(t *testing.T) {
	v := FromInt64(-12345)
	got, err := v.Int64()
	require.NoError(t, err)
	require.Equal(t, int64(-12345), got)

	_, err = v.Uint64()
	require.ErrorIs(t, err, ErrNumberNegative)

	frac := MustFromString("1.5")
	_, err = frac.Int64()
	require.ErrorIs(t, err, ErrNumberNotInteger)

	big := MustFromString("99999999999999999999999999")
	_, err = big.Int64()
	require.ErrorIs(t, err, ErrNumberTooLarge)
}

func TestFloatConversions(t *testing.T) {
	v, err := FromFloat64(1.5)
	require.NoError(t, err)
	require.Equal(t, "1.5", v.String())

	f, err := v.Float64()
	require.NoError(t, err)
	require.Equal(t, 1.5, f)

	_, err = FromFloat64(0)
	require.NoError(t, err)
}

func TestHashStableAcrossEqualValues(t *testing.T) {
	a := MustFromString("1.50")
	b := MustFromString("1.5")
	require.True(t, a.Equal(b))
	require.Equal(t, a.Hash(), b.Hash())
}

func TestBytesPublicRoundTrip(t *testing.T) {
	v := MustFromString("-0.00042")
	buf := v.Bytes()
	got, err := FromBytes(buf)
	require.NoError(t, err)
	require.True(t, v.Equal(got))
}

func TestStringLargeMagnitude(t *testing.T) {
	require.Equal(t, "1e100", MustFromString("1e100").String())
	require.Equal(t, "1.234e101", MustFromString("1.234e101").String())
}

func TestPowiAndShift(t *testing.T) {
	base := FromInt64(3)
	require.Equal(t, "243", base.Powi(5).String())

	v := MustFromString("2.5")
	require.Equal(t, "250", v.Shl(2).String())
	require.Equal(t, "0.025", v.Shr(2).String())
}

func TestRoundAssignMutatesReceiver(t *testing.T) {
	v := MustFromString("1.2345")
	v.RoundAssign(Decimals(2), RoundHalfToEven)
	require.Equal(t, "1.23", v.String())
}
