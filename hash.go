// Copyright 2024 The Scientific Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scientific

import "hash/fnv"

// hashSci returns a 64-bit hash of the canonical encoding of s. Two
// values that compare equal always hash equal, since canonical form is
// unique per value. A Scientific is not itself comparable (it embeds a
// slice) and so cannot be used directly as a map key the way the
// original_source's derived Hash impl allowed; Hash gives callers a
// stand-in they can key a map with, alongside the always-available
// option of keying on String().
func hashSci(s sci) uint64 {
	h := fnv.New64a()
	_, _ = h.Write(bytesEncode(s))
	return h.Sum64()
}
