// Copyright 2024 The Scientific Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scientific

// Rounding selects how an inexact result is rounded to its final,
// requested Precision. Grounded on
// original_source/scientific/src/ops/rounding.rs, which defines the same
// ten modes.
type Rounding int8

const (
	RoundDown Rounding = iota
	RoundUp
	RoundTowardsZero
	RoundAwayFromZero
	RoundHalfDown
	RoundHalfUp
	RoundHalfTowardsZero
	RoundHalfAwayFromZero
	RoundHalfToEven
	RoundHalfToOdd
)

// roundUpDecision reports whether the kept digits should be incremented
// in magnitude, given the first discarded digit, whether any digit after
// it is non-zero, the last kept digit (for the half-to-even/odd tie
// break), and the sign of the value.
func roundUpDecision(mode Rounding, firstDiscarded byte, restNonzero bool, lastKept byte, isNegative bool) bool {
	switch mode {
	case RoundDown:
		return isNegative
	case RoundUp:
		return !isNegative
	case RoundTowardsZero:
		return false
	case RoundAwayFromZero:
		return true
	}

	switch {
	case firstDiscarded > 5 || (firstDiscarded == 5 && restNonzero):
		return true
	case firstDiscarded < 5:
		return false
	}

	switch mode {
	case RoundHalfDown:
		return isNegative
	case RoundHalfUp:
		return !isNegative
	case RoundHalfTowardsZero:
		return false
	case RoundHalfAwayFromZero:
		return true
	case RoundHalfToEven:
		return lastKept%2 == 1
	case RoundHalfToOdd:
		return lastKept%2 == 0
	}
	return false
}

// roundSci rounds v so that its least significant retained digit has
// exponent targetExp, using mode to decide ties. If v already has no
// digits below targetExp, v is returned unchanged (rounding never adds
// precision, only removes it).
func roundSci(v sci, targetExp int64, mode Rounding) sci {
	if v.isZero() {
		return v
	}
	expLo := v.exponent()
	if targetExp <= expLo {
		return v
	}

	length := int64(len(v.mant))
	discarded := targetExp - expLo
	keptCount := length - discarded
	if keptCount < 0 {
		keptCount = 0
	}

	var firstDiscarded byte
	var restNonzero bool
	switch {
	case keptCount <= 0 && targetExp > v.exponent1()+1:
		// targetExp sits strictly above v's leading digit with at least
		// one empty place in between: the whole (non-zero) value is then
		// worth less than 10^(targetExp-1), well under half of
		// 10^targetExp, so it must compare as "less than half" regardless
		// of its actual leading digit.
		restNonzero = true
	case keptCount < length:
		disc := v.mant[keptCount:]
		firstDiscarded = disc[0]
		for _, d := range disc[1:] {
			if d != 0 {
				restNonzero = true
				break
			}
		}
	}

	var lastKept byte
	if keptCount > 0 {
		lastKept = v.mant[keptCount-1]
	}

	if firstDiscarded == 0 && !restNonzero {
		if keptCount == 0 {
			return sciZero
		}
		return trimRounded(v.sign, append([]byte(nil), v.mant[:keptCount]...), targetExp)
	}

	roundUp := roundUpDecision(mode, firstDiscarded, restNonzero, lastKept, v.sign.isNegative())
	if !roundUp {
		if keptCount == 0 {
			return sciZero
		}
		return trimRounded(v.sign, append([]byte(nil), v.mant[:keptCount]...), targetExp)
	}

	if keptCount == 0 {
		return sci{sign: v.sign, mant: []byte{1}, exp: targetExp, own: newOwner(1)}
	}

	kept := append([]byte(nil), v.mant[:keptCount]...)
	i := len(kept) - 1
	for i >= 0 {
		if kept[i] == 9 {
			kept[i] = 0
			i--
			continue
		}
		kept[i]++
		break
	}
	if i < 0 {
		grown := make([]byte, len(kept)+1)
		grown[0] = 1
		copy(grown[1:], kept)
		kept = grown
	}
	return trimRounded(v.sign, kept, targetExp)
}

// trimRounded removes trailing zero digits a rounding carry may have
// produced (e.g. 995 rounding up to 1000 at the tens place still reports
// mantissa "1" with a higher exponent, not "1000").
func trimRounded(sg sign, mant []byte, exp int64) sci {
	end := len(mant)
	for end > 0 && mant[end-1] == 0 {
		end--
		exp++
	}
	if end == 0 {
		return sciZero
	}
	mant = mant[:end]
	return sci{sign: sg, mant: mant, exp: exp, own: newOwner(len(mant))}
}

// truncateSci chops v to targetExp without regard to the discarded
// digits' magnitude, equivalent to rounding towards zero.
func truncateSci(v sci, targetExp int64) sci {
	return roundSci(v, targetExp, RoundTowardsZero)
}

// roundRPSP implements "round to prepare for shorter precision": an
// intermediate rounding used internally by iterative algorithms (Sqrt,
// Div) so that an intermediate rounding never hides information a later,
// final rounding would need to round correctly. It keeps one digit
// beyond targetExp -- the caller's nominal cut point -- and rounds that
// extra digit up iff it is exactly 0 or 5, leaving it alone otherwise.
// Grounded on original_source/scientific/src/types/rounding_rpsp.rs.
func roundRPSP(v sci, targetExp int64) sci {
	if v.isZero() {
		return v
	}
	guardExp := targetExp - 1
	expLo := v.exponent()
	if guardExp <= expLo {
		return v
	}

	length := int64(len(v.mant))
	discarded := guardExp - expLo
	if discarded >= length {
		return sci{sign: v.sign, mant: []byte{1}, exp: guardExp, own: newOwner(1)}
	}

	keptCount := length - discarded
	kept := append([]byte(nil), v.mant[:keptCount]...)
	before := kept[len(kept)-1]
	if before != 0 && before != 5 {
		return sci{sign: v.sign, mant: kept, exp: guardExp, own: newOwner(len(kept))}
	}

	i := len(kept) - 1
	for i >= 0 {
		if kept[i] == 9 {
			kept[i] = 0
			i--
			continue
		}
		kept[i]++
		break
	}
	if i < 0 {
		grown := make([]byte, len(kept)+1)
		grown[0] = 1
		copy(grown[1:], kept)
		kept = grown
	}
	return trimRounded(v.sign, kept, guardExp)
}
