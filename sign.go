// Copyright 2024 The Scientific Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scientific

// sign is a two-valued tag, never a subtype: negation flips it and xor
// combines the signs of a product or quotient.
type sign bool

const (
	positive sign = false
	negative sign = true
)

func newSign(isNegative bool) sign {
	return sign(isNegative)
}

func (s sign) isNegative() bool { return bool(s) }

func (s sign) neg() sign { return !s }

func (s sign) xor(t sign) sign { return s != t }
