// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package gid

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/pion/gid/base16"
	"github.com/pion/gid/base62"
)

// MarshalText implements encoding.TextMarshaler. 16 byte identifiers use
// base62, other widths use lowercase hex.
func (g GID[A, T]) MarshalText() ([]byte, error) {
	if id, ok := g.array16(); ok {
		return base62.AppendEncode(make([]byte, 0, base62.EncodedLen), id), nil
	}

	return g.AppendHex(make([]byte, 0, base16.EncodedLen(len(g.raw)))), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts hex for every
// width and base62 for 16 byte identifiers. On failure g is zeroed.
func (g *GID[A, T]) UnmarshalText(text []byte) error {
	err := g.unmarshalText(text)
	if err != nil {
		*g = GID[A, T]{}
	}

	return err
}

func (g *GID[A, T]) unmarshalText(text []byte) error {
	n := len(g.raw)
	switch {
	case n == base62.DecodedLen && len(text) == base62.EncodedLen:
		id, err := base62.Decode(text)
		if err != nil {
			return err
		}
		g.setBytes(id[:])
	case len(text) == base16.EncodedLen(n):
		var buf [maxLen]byte
		if err := base16.Decode(buf[:n], text); err != nil {
			return err
		}
		g.setBytes(buf[:n])
	default:
		return ErrInvalidLength
	}

	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (g GID[A, T]) MarshalBinary() ([]byte, error) {
	return g.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. data must be exactly
// len(A) bytes. On failure g is zeroed.
func (g *GID[A, T]) UnmarshalBinary(data []byte) error {
	if len(data) != len(g.raw) {
		*g = GID[A, T]{}
		return ErrInvalidLength
	}
	g.setBytes(data)

	return nil
}

// MarshalCBOR encodes the identifier as a CBOR byte string.
func (g GID[A, T]) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(g.Bytes())
}

// UnmarshalCBOR decodes a CBOR byte string of exactly len(A) bytes. On
// failure g is zeroed.
func (g *GID[A, T]) UnmarshalCBOR(data []byte) error {
	var raw []byte
	if err := cbor.Unmarshal(data, &raw); err != nil {
		*g = GID[A, T]{}
		return err
	}

	return g.UnmarshalBinary(raw)
}
