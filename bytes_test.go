// Copyright 2024 The Scientific Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scientific

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytesRoundTrip(t *testing.T) {
	values := []string{
		"0", "1", "-1", "123.456", "-123.456",
		"1e100", "1e-100", "9999999999999999999999999999",
		"0.000000000000000001", "123456789012345678901234.56789",
	}
	for _, in := range values {
		t.Run(in, func(t *testing.T) {
			v := mustParse(t, in)
			buf := bytesEncode(v)
			got, err := bytesDecode(buf)
			require.NoError(t, err)
			require.True(t, equal(v, got), "round-trip mismatch for %s: got %s", in, plainString(got.sign, got.mant, got.exponent()))
		})
	}
}

func TestBytesZero(t *testing.T) {
	buf := bytesEncode(sciZero)
	require.Empty(t, buf)
	got, err := bytesDecode(buf)
	require.NoError(t, err)
	require.True(t, got.isZero())
}

// TestBytesTinyVector checks the encoding of a small value against its
// byte-level wire representation: a direct one-byte header (exponent -3
// fits the 7-bit direct band) followed by the mantissa 1234 packed as
// one 10-bit triplet (123) plus a trailing nibble (4).
func TestBytesTinyVector(t *testing.T) {
	v := mustParse(t, "1.234")
	buf := bytesEncode(v)
	require.Equal(t, []byte{0x7D, 0x1E, 0xD0}, buf)

	got, err := bytesDecode(buf)
	require.NoError(t, err)
	require.True(t, equal(v, got))
}

// TestBytesLargeExponentVector checks a value whose exponent overflows
// the 7-bit direct band and must fall back to the one-byte signed-escape
// form (header 0x3c followed by the exponent as a single signed byte).
func TestBytesLargeExponentVector(t *testing.T) {
	v := mustParse(t, "1.234e101")
	buf := bytesEncode(v)
	require.Equal(t, []byte{0x3C, 0x62, 0x1E, 0xD0}, buf)

	got, err := bytesDecode(buf)
	require.NoError(t, err)
	require.True(t, equal(v, got))
}

func TestBytesNegativeSignBit(t *testing.T) {
	v := mustParse(t, "-1.234")
	buf := bytesEncode(v)
	require.Equal(t, byte(0x80), buf[0]&0x80)

	got, err := bytesDecode(buf)
	require.NoError(t, err)
	require.True(t, equal(v, got))
}

func TestBytesDecodeRejectsCorruption(t *testing.T) {
	v := mustParse(t, "1.234")
	buf := bytesEncode(v)

	corrupt := append([]byte(nil), buf...)
	corrupt[len(corrupt)-1] ^= 0x01
	_, err := bytesDecode(corrupt)
	require.Error(t, err)
}
