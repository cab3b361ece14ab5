// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package base62

import (
	"errors"
	"testing"
)

func FuzzEncodeRoundTrip(f *testing.F) {
	f.Add(make([]byte, DecodedLen))
	f.Add([]byte{0xdb, 0xc3, 0xd5, 0xeb, 0xe3, 0x44, 0x48, 0x4d, 0xa3, 0xe2, 0x44, 0x87, 0x12, 0xa0, 0x22, 0x13})

	f.Fuzz(func(t *testing.T, data []byte) {
		var id [DecodedLen]byte
		copy(id[:], data)

		out := Encode(id)
		got, err := Decode(out[:])
		if err != nil {
			t.Fatalf("decode %q: %v", out, err)
		}
		if got != id {
			t.Fatalf("round trip %x -> %q -> %x", id, out, got)
		}
	})
}

func FuzzDecode(f *testing.F) {
	f.Add(MaxString)
	f.Add("7N42dgm5tFLK9N8MT7fHC8")
	f.Add("000000000000000000000+")
	f.Add("0000000000000000000001")

	f.Fuzz(func(t *testing.T, s string) {
		id, err := DecodeString(s)
		if err != nil {
			if id != ([DecodedLen]byte{}) {
				t.Fatalf("non-zero output on failure for %q", s)
			}
			if !errors.Is(err, ErrInvalidCharacter) && !errors.Is(err, ErrOutOfRange) && !errors.Is(err, ErrTruncated) {
				t.Fatalf("unexpected error %v", err)
			}
			return
		}

		if out := EncodeToString(id); out != s[:EncodedLen] {
			t.Fatalf("round trip %q -> %x -> %q", s, id, out)
		}
	})
}
