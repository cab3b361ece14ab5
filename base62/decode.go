// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package base62

import "encoding/binary"

const (
	decodeLimbBits = 24
	decodeLimbMask = 1<<decodeLimbBits - 1
	decodeLimbs    = 5
)

// decodeGrows lists the digit counts after which the most significant active
// limb may have passed 24 bits, so its overflow moves into a fresh limb. They
// come from shifting MaxString in one digit at a time: bits 24, 48, 72 and 96
// are first crossed after 5, 9, 13 and 17 digits.
var decodeGrows = [decodeLimbs]int{5, 9, 13, 17, EncodedLen} //nolint:gochecknoglobals

// Decode parses the first EncodedLen bytes of src. Bytes after that are not
// read. A NUL byte before EncodedLen bytes, or a shorter src, is ErrTruncated.
//
// On failure the returned identifier is all zero.
func Decode(src []byte) ([DecodedLen]byte, error) {
	return decode(src)
}

// DecodeString is like Decode but takes a string.
func DecodeString(s string) ([DecodedLen]byte, error) {
	return decode(s)
}

func decode[S ~string | ~[]byte](src S) (id [DecodedLen]byte, err error) {
	var digits [EncodedLen]byte
	if err = digitsOf(&digits, src); err != nil {
		return id, err
	}
	if !InRange(&digits) {
		return id, ErrOutOfRange
	}

	accumulate(&id, &digits)

	return id, nil
}

func digitsOf[S ~string | ~[]byte](digits *[EncodedLen]byte, src S) error {
	for i := range digits {
		if i >= len(src) || src[i] == 0 {
			return ErrTruncated
		}
		v, ok := Value(src[i])
		if !ok {
			return ErrInvalidCharacter
		}
		digits[i] = v
	}

	return nil
}

// accumulate computes sum(digits[i] * 62^(21-i)) into id. digits must be
// InRange, which keeps the top limb within 32 bits.
func accumulate(id *[DecodedLen]byte, digits *[EncodedLen]byte) {
	var limbs [decodeLimbs]uint32 // least significant first
	active, i := 1, 0
	for _, grow := range decodeGrows {
		for ; i < grow; i++ {
			carry := uint32(digits[i])
			for j := 0; j < active-1; j++ {
				v := limbs[j]*62 + carry
				carry = v >> decodeLimbBits
				limbs[j] = v & decodeLimbMask
			}
			limbs[active-1] = limbs[active-1]*62 + carry
		}

		if active < decodeLimbs {
			limbs[active] = limbs[active-1] >> decodeLimbBits
			limbs[active-1] &= decodeLimbMask
			active++
		}
	}

	binary.BigEndian.PutUint32(id[0:4], limbs[4])
	put24(id[4:7], limbs[3])
	put24(id[7:10], limbs[2])
	put24(id[10:13], limbs[1])
	put24(id[13:16], limbs[0])
}

func put24(b []byte, v uint32) {
	_ = b[2]
	b[0] = byte(v >> 16)
	b[1] = byte(v >> 8)
	b[2] = byte(v)
}
