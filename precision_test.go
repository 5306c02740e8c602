// Copyright 2024 The Scientific Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scientific

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrecisionConstructors(t *testing.T) {
	require.Equal(t, Precision{kind: precisionDigits, n: 5}, Digits(5))
	require.Equal(t, Precision{kind: precisionDecimals, n: 3}, Decimals(3))
	require.Equal(t, Decimals(0), INTEGER)
	require.Equal(t, Digits(16), F64)
}

func TestPrecisionAddSub(t *testing.T) {
	p := Digits(10).Add(2)
	require.Equal(t, int64(12), p.n)
	p = p.Sub(5)
	require.Equal(t, int64(7), p.n)
}

func TestTargetExponentDecimals(t *testing.T) {
	v := mustParse(t, "123.456")
	require.Equal(t, int64(-2), Decimals(2).targetExponent(v))
	require.Equal(t, int64(1), Decimals(-1).targetExponent(v))
}

func TestTargetExponentDigits(t *testing.T) {
	v := mustParse(t, "123.456")
	require.Equal(t, int64(2), v.exponent1())
	require.Equal(t, int64(1), Digits(2).targetExponent(v))
	require.Equal(t, int64(-2), Digits(5).targetExponent(v))
}

func TestTargetExponentZero(t *testing.T) {
	require.Equal(t, int64(-4), Digits(5).targetExponent(sciZero))
}
