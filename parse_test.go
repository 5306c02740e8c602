// Copyright 2024 The Scientific Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scientific

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSci(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"-0", "0"},
		{"0.0", "0"},
		{"123", "123"},
		{"-123", "-123"},
		{"123.456", "123.456"},
		{".5", "0.5"},
		{"5.", "5"},
		{"1e3", "1000"},
		{"1E3", "1000"},
		{"1.5e2", "150"},
		{"1.5e-2", "0.015"},
		{"+42", "42"},
		{"00123.4500", "123.45"},
		{"0.000", "0"},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			v, err := parseSci(c.in)
			require.NoError(t, err)
			got := plainString(v.sign, v.mant, v.exponent())
			require.Equal(t, c.want, got)
		})
	}
}

func TestParseSciErrors(t *testing.T) {
	bad := []string{"", "+", "-", ".", "e10", "1e", "1.2.3", "1e1.5", "abc", "1-2"}
	for _, in := range bad {
		t.Run(in, func(t *testing.T) {
			_, err := parseSci(in)
			require.Error(t, err)
		})
	}
}
