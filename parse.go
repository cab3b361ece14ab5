// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package gid

import (
	"github.com/pion/gid/base16"
	"github.com/pion/gid/base62"
)

// ParseHex parses the hex form of an identifier. Both cases are accepted.
// On failure the zero identifier is returned.
func ParseHex[A Array, T any](s string) (GID[A, T], error) {
	var g GID[A, T]
	n := len(g.raw)
	if len(s) > base16.EncodedLen(n) {
		return g, ErrInvalidLength
	}

	var buf [maxLen]byte
	if err := base16.DecodeInto(buf[:n], s); err != nil {
		return g, err
	}
	g.setBytes(buf[:n])

	return g, nil
}

// ParseBase62 parses the base62 form of a 16 byte identifier. On failure the
// zero identifier is returned.
func ParseBase62[T any](s string) (GID[[16]byte, T], error) {
	if len(s) > base62.EncodedLen {
		return GID[[16]byte, T]{}, ErrInvalidLength
	}
	id, err := base62.DecodeString(s)
	if err != nil {
		return GID[[16]byte, T]{}, err
	}

	return GID[[16]byte, T]{raw: id}, nil
}

// Parse parses an untagged 128-bit identifier in either text form, picked by
// length.
func Parse(s string) (ID, error) {
	switch len(s) {
	case base62.EncodedLen:
		return ParseBase62[Untagged](s)
	case base16.EncodedLen(base62.DecodedLen):
		return ParseHex[[16]byte, Untagged](s)
	default:
		return ID{}, ErrInvalidLength
	}
}

// MustParse is like Parse but panics on error. It is meant for constants in
// tests and package variables.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic("gid: Parse(" + s + "): " + err.Error())
	}

	return id
}
