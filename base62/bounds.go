// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package base62

// maxDigits holds the digit values of MaxString.
var maxDigits = [EncodedLen]byte{ //nolint:gochecknoglobals
	7, 49, 4, 2, 13, 16, 22, 5, 29, 41, 47,
	46, 9, 49, 8, 48, 55, 7, 15, 43, 38, 7,
}

// InRange reports whether digits, most significant first, is a number no
// larger than 2^128-1.
func InRange(digits *[EncodedLen]byte) bool {
	for i := range digits {
		switch {
		case digits[i] > maxDigits[i]:
			return false
		case digits[i] < maxDigits[i]:
			return true
		}
	}

	return true
}
