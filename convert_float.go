// Copyright 2024 The Scientific Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scientific

import (
	"math"
	"strconv"
)

// sciFromFloat64 converts f to the exact decimal value of its shortest
// round-tripping text representation. This is a deliberate simplification
// of original_source/scientific/src/conv/from_f64.rs, which instead
// expands the float's exact binary fraction into decimal; see DESIGN.md
// for why strconv's shortest round-trip form was chosen instead.
func sciFromFloat64(f float64) (sci, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return sciZero, ErrFloatNotFinite
	}
	if f == 0 {
		return sciZero, nil
	}
	v, err := parseSci(strconv.FormatFloat(f, 'e', -1, 64))
	if err != nil {
		return sciZero, err
	}
	return v, nil
}

func sciFromFloat32(f float32) (sci, error) {
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return sciZero, ErrFloatNotFinite
	}
	if f == 0 {
		return sciZero, nil
	}
	v, err := parseSci(strconv.FormatFloat(float64(f), 'e', -1, 32))
	if err != nil {
		return sciZero, err
	}
	return v, nil
}

func sciToFloat64(s sci) (float64, error) {
	str := scientificString(s.sign, s.mant, s.exponent1())
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, ErrNumberTooLarge
	}
	if math.IsInf(f, 0) {
		return 0, ErrNumberTooLarge
	}
	return f, nil
}

func sciToFloat32(s sci) (float32, error) {
	str := scientificString(s.sign, s.mant, s.exponent1())
	f, err := strconv.ParseFloat(str, 32)
	if err != nil {
		return 0, ErrNumberTooLarge
	}
	if math.IsInf(f, 0) {
		return 0, ErrNumberTooLarge
	}
	return float32(f), nil
}
