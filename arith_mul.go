// Copyright 2024 The Scientific Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scientific

// mulSci computes a*b exactly via standard schoolbook long multiplication.
// No Karatsuba or FFT-based multiplication is used, matching spec.md §4.6's
// explicit restriction to "standard schoolbook" and db47h/decimal's own
// dec.mulAddWW-based long multiplication.
func mulSci(a, b sci) sci {
	if a.isZero() || b.isZero() {
		return sciZero
	}

	la, lb := len(a.mant), len(b.mant)
	acc := make([]uint32, la+lb)
	for i := la - 1; i >= 0; i-- {
		ad := uint32(a.mant[i])
		if ad == 0 {
			continue
		}
		for j := lb - 1; j >= 0; j-- {
			acc[i+j+1] += ad * uint32(b.mant[j])
		}
	}

	buf := make([]byte, len(acc))
	carry := uint32(0)
	for i := len(acc) - 1; i >= 0; i-- {
		v := acc[i] + carry
		buf[i] = byte(v % 10)
		carry = v / 10
	}

	b2 := &builder{sg: a.sign.xor(b.sign), mant: buf, exp: a.exponent() + b.exponent()}
	return b2.finish()
}
