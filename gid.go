// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package gid implements fixed-size opaque identifiers.
//
// A GID owns a fixed-size byte array and carries a tag type parameter that
// only exists at compile time. Two identifiers with the same width but
// different tags are different Go types and cannot be mixed up:
//
//	type track struct{}
//	type album struct{}
//
//	t, err := gid.ParseBase62[track]("6GGODyP2LIdbxIfYxy5UbN")
//	var a gid.GID[[16]byte, album] = t // does not compile
//
// Every width has a hex form. 16 byte identifiers also have the 22 character
// base62 form implemented by package base62.
package gid

import (
	"hash/maphash"

	"github.com/pion/gid/base16"
	"github.com/pion/gid/base62"
)

// Array is the set of byte arrays a GID can be built on.
type Array interface {
	~[4]byte | ~[8]byte | ~[12]byte | ~[16]byte | ~[20]byte | ~[32]byte | ~[64]byte
}

const maxLen = 64

// GID is an identifier of len(A) bytes tagged with T. T should be an empty
// struct; it never affects layout or behavior.
//
// GID values are comparable with == and usable as map keys when T is.
type GID[A Array, T any] struct {
	_   [0]T // first, so a zero-size tag adds no trailing padding
	raw A
}

// Untagged is the tag of identifiers that do not belong to a domain.
type Untagged struct{}

type (
	// ID is an untagged 128-bit identifier.
	ID = GID[[16]byte, Untagged]

	// ID64 is an untagged 64-bit identifier.
	ID64 = GID[[8]byte, Untagged]
)

// Zero returns the all-zero identifier.
func Zero[A Array, T any]() GID[A, T] {
	return GID[A, T]{}
}

// FromArray wraps a.
func FromArray[T any, A Array](a A) GID[A, T] {
	return GID[A, T]{raw: a}
}

// FromBytes copies b into a new identifier. b must be exactly len(A) bytes.
func FromBytes[A Array, T any](b []byte) (GID[A, T], error) {
	var g GID[A, T]
	if len(b) != len(g.raw) {
		return g, ErrInvalidLength
	}
	g.setBytes(b)

	return g, nil
}

// FromRaw is FromBytes for a raw byte string, the form returned by Raw.
func FromRaw[A Array, T any](raw string) (GID[A, T], error) {
	var g GID[A, T]
	if len(raw) != len(g.raw) {
		return g, ErrInvalidLength
	}
	for i := 0; i < len(raw); i++ {
		g.raw[i] = raw[i]
	}

	return g, nil
}

func (g *GID[A, T]) setBytes(b []byte) {
	for i := range b {
		g.raw[i] = b[i]
	}
}

// copyTo copies the identifier bytes into dst and returns how many were copied.
func (g GID[A, T]) copyTo(dst []byte) int {
	for i := 0; i < len(g.raw); i++ {
		dst[i] = g.raw[i]
	}

	return len(g.raw)
}

func (g GID[A, T]) array16() (id [base62.DecodedLen]byte, ok bool) {
	if len(g.raw) != len(id) {
		return id, false
	}
	g.copyTo(id[:])

	return id, true
}

// Len returns the identifier width in bytes.
func (g GID[A, T]) Len() int { return len(g.raw) }

// Array returns the underlying array.
func (g GID[A, T]) Array() A { return g.raw }

// Bytes returns a copy of the identifier bytes.
func (g GID[A, T]) Bytes() []byte {
	b := make([]byte, len(g.raw))
	g.copyTo(b)

	return b
}

// Raw returns the identifier bytes as a string.
func (g GID[A, T]) Raw() string {
	var buf [maxLen]byte
	n := g.copyTo(buf[:])

	return string(buf[:n])
}

// IsZero reports whether every byte is zero.
func (g GID[A, T]) IsZero() bool {
	for i := 0; i < len(g.raw); i++ {
		if g.raw[i] != 0 {
			return false
		}
	}

	return true
}

// Equal reports whether g and o hold the same bytes.
func (g GID[A, T]) Equal(o GID[A, T]) bool {
	return g.Compare(o) == 0
}

// Compare returns -1, 0 or 1 comparing the bytes of g and o in order.
func (g GID[A, T]) Compare(o GID[A, T]) int {
	for i := 0; i < len(g.raw); i++ {
		switch {
		case g.raw[i] < o.raw[i]:
			return -1
		case g.raw[i] > o.raw[i]:
			return 1
		}
	}

	return 0
}

// Hash returns a hash of the identifier bytes under seed.
func (g GID[A, T]) Hash(seed maphash.Seed) uint64 {
	var buf [maxLen]byte
	n := g.copyTo(buf[:])

	return maphash.Bytes(seed, buf[:n])
}

// AppendHex appends the lowercase hex form to dst.
func (g GID[A, T]) AppendHex(dst []byte) []byte {
	var buf [maxLen]byte
	n := g.copyTo(buf[:])

	return base16.AppendEncode(dst, buf[:n])
}

// Hex returns the lowercase hex form.
func (g GID[A, T]) Hex() string {
	return string(g.AppendHex(make([]byte, 0, base16.EncodedLen(len(g.raw)))))
}

// HexUpper returns the uppercase hex form.
func (g GID[A, T]) HexUpper() string {
	var buf [maxLen]byte
	n := g.copyTo(buf[:])

	return base16.EncodeToStringUpper(buf[:n])
}

// String returns the lowercase hex form.
func (g GID[A, T]) String() string {
	return g.Hex()
}

// Base62 returns the base62 form. Only 16 byte identifiers have one; other
// widths return ErrUnsupportedSize.
func (g GID[A, T]) Base62() (string, error) {
	id, ok := g.array16()
	if !ok {
		return "", ErrUnsupportedSize
	}

	return base62.EncodeToString(id), nil
}

// EncodeBase62 returns the base62 form of a 16 byte identifier.
func EncodeBase62[T any](g GID[[16]byte, T]) string {
	return base62.EncodeToString(g.raw)
}
