// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package base62

import "encoding/binary"

const (
	encodeLimbBits = 26
	encodeLimbMask = 1<<encodeLimbBits - 1
	encodeLimbs    = 5
)

// encodeDrops lists the digit counts after which the most significant active
// limb is known to be below 64 and is folded into the limb under it. The last
// entry is where only one limb is left and it holds the leading digit.
var encodeDrops = [encodeLimbs]int{4, 8, 12, 17, EncodedLen - 1} //nolint:gochecknoglobals

// Encode returns the base62 form of id. It never fails.
func Encode(id [DecodedLen]byte) [EncodedLen]byte {
	var out [EncodedLen]byte
	encode(&out, &id)

	return out
}

// EncodeToString returns the base62 form of id as a string.
func EncodeToString(id [DecodedLen]byte) string {
	out := Encode(id)

	return string(out[:])
}

// AppendEncode appends the base62 form of id to dst and returns the extended
// buffer.
func AppendEncode(dst []byte, id [DecodedLen]byte) []byte {
	out := Encode(id)

	return append(dst, out[:]...)
}

func encode(out *[EncodedLen]byte, id *[DecodedLen]byte) {
	w0 := binary.BigEndian.Uint32(id[0:4])
	w1 := binary.BigEndian.Uint32(id[4:8])
	w2 := binary.BigEndian.Uint32(id[8:12])
	w3 := binary.BigEndian.Uint32(id[12:16])

	// Five limbs, most significant first. The top one carries 24 bits, the
	// others 26, so a remainder below 62 shifted above any limb stays in 32 bits.
	limbs := [encodeLimbs]uint32{
		w0 >> 8,
		(w0<<18 | w1>>14) & encodeLimbMask,
		(w1<<12 | w2>>20) & encodeLimbMask,
		(w2<<6 | w3>>26) & encodeLimbMask,
		w3 & encodeLimbMask,
	}

	top, i := 0, 0
	for _, drop := range encodeDrops {
		for ; i < drop; i++ {
			var rem uint32
			for j := top; j < encodeLimbs; j++ {
				acc := rem<<encodeLimbBits | limbs[j]
				limbs[j] = acc / 62
				rem = acc % 62
			}
			out[EncodedLen-1-i] = Alphabet[rem]
		}

		if top < encodeLimbs-1 {
			limbs[top+1] |= limbs[top] << encodeLimbBits
			limbs[top] = 0
			top++
		}
	}

	out[0] = Alphabet[limbs[encodeLimbs-1]]
}
