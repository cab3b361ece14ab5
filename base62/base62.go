// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package base62 converts 128-bit identifiers to and from a fixed 22
// character base62 text form.
//
// The alphabet is 0-9, a-z, A-Z, in that order, and the most significant
// digit comes first. Every 16 byte value maps to exactly one 22 character
// string, zero padded on the left. The largest representable value, all 128
// bits set, is MaxString.
//
// Encoding and decoding use 32-bit limb arithmetic only, never allocate on
// the fixed-size paths and are safe for concurrent use.
package base62

import "github.com/pion/gid/internal/codecerr"

const (
	// EncodedLen is the length of every base62 string produced or accepted.
	EncodedLen = 22

	// DecodedLen is the identifier width in bytes.
	DecodedLen = 16

	// MaxString is the encoding of 2^128-1.
	MaxString = "7N42dgm5tFLK9N8MT7fHC7"
)

var (
	// ErrInvalidCharacter is returned for bytes outside the base62 alphabet.
	ErrInvalidCharacter = codecerr.ErrInvalidCharacter

	// ErrOutOfRange is returned for well-formed strings above MaxString.
	ErrOutOfRange = codecerr.ErrOutOfRange

	// ErrTruncated is returned when fewer than EncodedLen bytes are available.
	ErrTruncated = codecerr.ErrTruncated

	// ErrInvalidLength is returned by FromHex and ToHex for over-long input.
	ErrInvalidLength = codecerr.ErrInvalidLength
)
