// Copyright 2024 The Scientific Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scientific

import "errors"

// Errors returned by arithmetic operations that can fail (division,
// square root). Grounded on original_source/scientific/src/error.rs's
// CalcError enum.
var (
	ErrDivisionByZero = errors.New("scientific: division by zero")
	ErrNumberNegative = errors.New("scientific: number is negative")
)

// Errors returned by conversions to and from other representations.
// Grounded on original_source/scientific/src/error.rs's ConversionError
// enum.
var (
	ErrFloatNotFinite    = errors.New("scientific: float is not finite")
	ErrNumberTooLarge    = errors.New("scientific: number is too large for the target type")
	ErrParse             = errors.New("scientific: invalid decimal text")
	ErrNumberNotInteger  = errors.New("scientific: number is not an integer")
	ErrExponentTooLarge  = errors.New("scientific: exponent is too large to encode")
)
