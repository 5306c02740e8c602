// Copyright 2024 The Scientific Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scientific

import "math"

// Wire format, grounded on
// original_source/scientific/src/conversion/bytes_ser.rs and bytes_de.rs:
//
//	zero     the empty byte sequence
//	byte 0   header: bit 7 sign; bits 0-6 an exponent band. 0x00-0x3b is
//	         the exponent directly (0..59); 0x40-0x7f is the exponent
//	         sign-extended from 7 bits (-64..-1); 0x3c/0x3d/0x3e/0x3f
//	         mean the exponent follows as a big-endian 1/2/4/8-byte
//	         signed integer, the smallest width that fits
//	N bytes  the exponent, only present for the 0x3c-0x3f bands
//	rest     mantissa digits packed three at a time into 10-bit fields
//	         (000-999), most significant bit first. There is no length
//	         field: the decoder consumes every remaining bit and infers
//	         how many of the final 1 or 2 digits (and how many implied
//	         trailing zeros) they represent from how many digits-worth
//	         of bits are left over, the same computation the encoder
//	         used to decide how to pack them.
func bytesEncode(s sci) []byte {
	if s.isZero() {
		return nil
	}

	out := make([]byte, 0, len(s.mant)*5/12+9)
	sg := byte(0)
	if s.sign.isNegative() {
		sg = 0x80
	}

	exp := s.exponent()
	switch {
	case exp >= -64 && exp <= 59:
		out = append(out, sg|(byte(int8(exp))&0x7f))
	case exp >= math.MinInt8 && exp <= math.MaxInt8:
		out = append(out, sg|0x3c, byte(int8(exp)))
	case exp >= math.MinInt16 && exp <= math.MaxInt16:
		v := int16(exp)
		out = append(out, sg|0x3d, byte(v>>8), byte(v))
	case exp >= math.MinInt32 && exp <= math.MaxInt32:
		v := int32(exp)
		out = append(out, sg|0x3e, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
	default:
		out = append(out, sg|0x3f,
			byte(exp>>56), byte(exp>>48), byte(exp>>40), byte(exp>>32),
			byte(exp>>24), byte(exp>>16), byte(exp>>8), byte(exp))
	}

	return append(out, packDigits(s.mant)...)
}

// bytesDecode parses data, which must hold exactly one encoded value (no
// trailing padding beyond what the format itself requires), and returns
// it.
func bytesDecode(data []byte) (sci, error) {
	if len(data) == 0 {
		return sciZero, nil
	}

	header := data[0]
	sg := positive
	if header&0x80 != 0 {
		sg = negative
	}
	prefix := header & 0x7f

	var exp int64
	var pos int
	switch {
	case prefix < 0x3c:
		exp = int64(int8(prefix))
		pos = 1
	case prefix >= 0x40:
		exp = int64(int8(prefix | 0x80))
		pos = 1
	case prefix == 0x3c:
		if len(data) < 2 {
			return sciZero, ErrParse
		}
		exp = int64(int8(data[1]))
		pos = 2
	case prefix == 0x3d:
		if len(data) < 3 {
			return sciZero, ErrParse
		}
		exp = int64(int16(uint16(data[1])<<8 | uint16(data[2])))
		pos = 3
	case prefix == 0x3e:
		if len(data) < 5 {
			return sciZero, ErrParse
		}
		exp = int64(int32(uint32(data[1])<<24 | uint32(data[2])<<16 | uint32(data[3])<<8 | uint32(data[4])))
		pos = 5
	default: // prefix == 0x3f
		if len(data) < 9 {
			return sciZero, ErrParse
		}
		var v uint64
		for _, b := range data[1:9] {
			v = v<<8 | uint64(b)
		}
		exp = int64(v)
		pos = 9
	}

	digits, err := unpackDigits(data[pos:])
	if err != nil {
		return sciZero, err
	}
	return sci{sign: sg, mant: digits, exp: exp, own: newOwner(len(digits))}, nil
}

// packDigits writes mant three digits at a time into 10-bit big-endian
// fields via a 16-bit shift-register accumulator (buf holds bufLen valid
// low-order bits). Whatever 1 or 2 digits remain after the last full
// triplet are packed as either a final 10-bit triplet (third digit
// implied zero) or a run of 4-bit nibbles, whichever keeps the encoding
// unambiguous for the decoder's inverse computation; see unpackDigits.
func packDigits(mant []byte) []byte {
	var out []byte
	var buf uint16
	var bufLen uint

	p := 0
	remaining := len(mant)
	for remaining >= 3 {
		a, b, c := mant[p], mant[p+1], mant[p+2]
		p += 3
		remaining -= 3
		buf = (buf << 10) | (uint16(a)*100 + uint16(b)*10 + uint16(c))
		bufLen += 10
		for bufLen >= 8 {
			bufLen -= 8
			out = append(out, byte(buf>>bufLen))
		}
	}

	if bufLen+uint(remaining)*4 > 8 {
		a := mant[p]
		p++
		var b byte
		if remaining == 2 {
			b = mant[p]
			p++
		}
		buf = (buf << 10) | (uint16(a)*100 + uint16(b)*10)
		bufLen += 10
	} else {
		for i := 0; i < remaining; i++ {
			buf = (buf << 4) | uint16(mant[p])
			p++
			bufLen += 4
		}
	}

	for bufLen >= 8 {
		bufLen -= 8
		out = append(out, byte(buf>>bufLen))
	}
	if bufLen > 0 {
		out = append(out, byte(buf<<8>>bufLen))
	}
	return out
}

// unpackDigits is packDigits's inverse: it reads 10-bit triplets until
// fewer than 10 bits remain, then drains whatever whole 4-bit nibbles are
// left, then checks that any final sub-nibble bits are zero padding.
// trailingZeroesFor(len(digits after trimming)) tells it how many of
// those trailing zero digits the packing implies versus how many were
// actually written, which is what makes the otherwise length-less format
// decodable.
func unpackDigits(data []byte) ([]byte, error) {
	var owned []byte
	var buf uint16
	var bufLen uint
	i := 0

loop:
	for {
		for bufLen < 10 {
			if i >= len(data) {
				break loop
			}
			buf = buf<<8 | uint16(data[i])
			i++
			bufLen += 8
		}
		bufLen -= 10
		v := (buf >> bufLen) & 1023
		if v >= 1000 {
			return nil, ErrParse
		}
		owned = append(owned, byte(v/100), byte((v/10)%10), byte(v%10))
	}

	for bufLen >= 4 {
		bufLen -= 4
		v := (buf >> bufLen) & 15
		if v >= 10 {
			return nil, ErrParse
		}
		owned = append(owned, byte(v))
	}
	if bufLen > 0 && buf<<(16-bufLen) != 0 {
		return nil, ErrParse
	}

	length := len(owned)
	trailingZeroes := 0
	for length > 0 && owned[length-1] == 0 {
		length--
		trailingZeroes++
	}
	if length == 0 || owned[0] == 0 || trailingZeroes != trailingZeroesFor(length) {
		return nil, ErrParse
	}
	return owned[:length], nil
}

// trailingZeroesFor reports how many trailing zero digits packDigits
// implies for a decoded mantissa of the given length, keyed by
// (length mod 3, accumulated-bits-mod-8 at that point in the packing),
// mirroring bytes_de.rs's calculate_trailing_zeroes.
func trailingZeroesFor(length int) int {
	dig := length % 3
	slack := (length / 3 * 10) % 8
	return int((trailingZeroesTable >> uint(dig*8+slack)) & 3)
}

const trailingZeroesTable uint32 = 1<<2 | 1<<4 | 1<<8 | 2<<14 | 2<<18 | 1<<20 | 1<<22
