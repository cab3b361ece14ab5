// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package base62

// Alphabet lists the base62 symbols ordered by digit value.
const Alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

const invalidValue = 0xff

// values maps a byte to its digit value, or invalidValue.
var values = func() (t [256]byte) { //nolint:gochecknoglobals
	for i := range t {
		t[i] = invalidValue
	}
	for v := 0; v < len(Alphabet); v++ {
		t[Alphabet[v]] = byte(v)
	}
	return t
}()

// Digit returns the symbol for digit value v. v must be in 0..61.
func Digit(v byte) byte {
	return Alphabet[v]
}

// Value returns the digit value of c and whether c belongs to the alphabet.
func Value(c byte) (byte, bool) {
	v := values[c]
	return v, v != invalidValue
}
