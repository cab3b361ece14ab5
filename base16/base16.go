// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package base16 implements the hex text form of identifiers.
//
// Encoding produces lowercase by default, EncodeUpper produces uppercase, and
// decoding accepts either. Decoding follows the same conventions as package
// base62: a fixed number of characters is read from the front of the input
// and a NUL byte ends the input early.
package base16

import (
	"slices"

	"github.com/pion/gid/internal/codecerr"
)

const (
	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"
	invalidNib  = 0xff
)

var (
	// ErrInvalidCharacter is returned for a byte that is not a hex digit.
	ErrInvalidCharacter = codecerr.ErrInvalidCharacter

	// ErrTruncated is returned when the input holds fewer than the required
	// number of characters.
	ErrTruncated = codecerr.ErrTruncated
)

// nibbles maps a byte to its value, or invalidNib.
var nibbles = func() (t [256]byte) { //nolint:gochecknoglobals
	for i := range t {
		t[i] = invalidNib
	}
	for v := 0; v < 16; v++ {
		t[lowerDigits[v]] = byte(v)
		t[upperDigits[v]] = byte(v)
	}
	return t
}()

// EncodedLen returns the length of the encoding of n bytes.
func EncodedLen(n int) int { return n * 2 }

// DecodedLen returns the number of bytes held by x hex characters.
func DecodedLen(x int) int { return x / 2 }

// Encode writes the lowercase hex form of src into dst and returns the number
// of bytes written. dst must hold EncodedLen(len(src)) bytes.
func Encode(dst, src []byte) int {
	return encode(dst, src, lowerDigits)
}

// EncodeUpper is like Encode but uses uppercase digits.
func EncodeUpper(dst, src []byte) int {
	return encode(dst, src, upperDigits)
}

func encode(dst, src []byte, digits string) int {
	for i, v := range src {
		dst[i*2] = digits[v>>4]
		dst[i*2+1] = digits[v&0x0f]
	}

	return EncodedLen(len(src))
}

// EncodeToString returns the lowercase hex form of src.
func EncodeToString(src []byte) string {
	dst := make([]byte, EncodedLen(len(src)))
	Encode(dst, src)

	return string(dst)
}

// EncodeToStringUpper returns the uppercase hex form of src.
func EncodeToStringUpper(src []byte) string {
	dst := make([]byte, EncodedLen(len(src)))
	EncodeUpper(dst, src)

	return string(dst)
}

// AppendEncode appends the lowercase hex form of src to dst. It does not
// allocate when dst has room.
func AppendEncode(dst, src []byte) []byte {
	n, m := len(dst), EncodedLen(len(src))
	dst = slices.Grow(dst, m)[:n+m]
	Encode(dst[n:], src)

	return dst
}

// Decode fills dst from the first EncodedLen(len(dst)) bytes of src. Bytes
// after that are not read.
func Decode(dst, src []byte) error {
	return decode(dst, src)
}

// DecodeInto is like Decode but reads from a string.
func DecodeInto(dst []byte, s string) error {
	return decode(dst, s)
}

// DecodeString returns the bytes represented by the whole of s.
func DecodeString(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, ErrTruncated
	}
	dst := make([]byte, DecodedLen(len(s)))
	if err := decode(dst, s); err != nil {
		return nil, err
	}

	return dst, nil
}

func decode[S ~string | ~[]byte](dst []byte, src S) error {
	for i := range dst {
		hi, err := nibble(src, i*2)
		if err != nil {
			return err
		}
		lo, err := nibble(src, i*2+1)
		if err != nil {
			return err
		}
		dst[i] = hi<<4 | lo
	}

	return nil
}

func nibble[S ~string | ~[]byte](src S, i int) (byte, error) {
	if i >= len(src) || src[i] == 0 {
		return 0, ErrTruncated
	}
	v := nibbles[src[i]]
	if v == invalidNib {
		return 0, ErrInvalidCharacter
	}

	return v, nil
}
