// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package codecerr holds the decode error values shared by the text codecs.
package codecerr

import "errors"

var (
	// ErrInvalidCharacter is returned when a byte outside the codec alphabet is found.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrOutOfRange is returned when every character is valid but the value
	// does not fit in the destination width.
	ErrOutOfRange = errors.New("value out of range")

	// ErrTruncated is returned when the input ends, or a NUL terminator is
	// found, before the required number of characters was read.
	ErrTruncated = errors.New("input truncated")

	// ErrInvalidLength is returned when the input is longer than any
	// encoding of the destination width.
	ErrInvalidLength = errors.New("invalid identifier length")
)
