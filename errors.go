// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package gid

import (
	"errors"

	"github.com/pion/gid/internal/codecerr"
)

var (
	// ErrInvalidLength is returned when input does not have the length of
	// any encoding of the identifier width.
	ErrInvalidLength = codecerr.ErrInvalidLength

	// ErrUnsupportedSize is returned when base62 is requested for an
	// identifier that is not 16 bytes wide.
	ErrUnsupportedSize = errors.New("base62 requires a 16 byte identifier")

	// ErrInvalidCharacter is returned for bytes outside the hex or base62 alphabet.
	ErrInvalidCharacter = codecerr.ErrInvalidCharacter

	// ErrOutOfRange is returned for base62 strings above 2^128-1.
	ErrOutOfRange = codecerr.ErrOutOfRange

	// ErrTruncated is returned when input is shorter than the encoding.
	ErrTruncated = codecerr.ErrTruncated

	errInvalidDeriveKey = errors.New("invalid derivation key")
	errRandomSource     = errors.New("failed to read random source")
	errInvalidSnowflake = errors.New("invalid snowflake node")
	errFailedToGenerate = errors.New("failed to generate identifier")
)
