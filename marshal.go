// Copyright 2024 The Scientific Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scientific

import "fmt"

// MarshalText implements encoding.TextMarshaler, the idiomatic Go stand-in
// for the original_source's generic serde support: it also backs
// encoding/json via the TextMarshaler fallback path. Its rendering rules
// are distinct from String: an integer prints with up to three trailing
// zeros and no decimal point, a value whose fractional digits still fit
// within its own length prints with an implied leading zero, and
// anything else falls back to scientific notation. Grounded on
// original_source/scientific/src/types/serde_ser.rs's s_display_1e.
func (a Scientific) MarshalText() ([]byte, error) {
	return []byte(humanReadableString(a.v.sign, a.v.mant, a.v.exponent())), nil
}

func (a *Scientific) UnmarshalText(text []byte) error {
	v, err := FromString(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func (a Scientific) MarshalBinary() ([]byte, error) {
	return a.Bytes(), nil
}

func (a *Scientific) UnmarshalBinary(data []byte) error {
	v, err := FromBytes(data)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// MarshalJSON encodes a as a JSON string (not a bare JSON number), since a
// JSON number cannot represent arbitrary precision without loss.
func (a Scientific) MarshalJSON() ([]byte, error) {
	text, err := a.MarshalText()
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(text)+2)
	out = append(out, '"')
	out = append(out, text...)
	out = append(out, '"')
	return out, nil
}

func (a *Scientific) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("scientific: expected a JSON string, got %q", data)
	}
	return a.UnmarshalText(data[1 : len(data)-1])
}
