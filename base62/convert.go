// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package base62

import "github.com/pion/gid/base16"

// FromHex converts a 32 character hex identifier to its base62 form. Longer
// input is ErrInvalidLength, shorter input ErrTruncated.
func FromHex(hex string) (string, error) {
	var id [DecodedLen]byte
	if len(hex) > base16.EncodedLen(DecodedLen) {
		return "", ErrInvalidLength
	}
	if err := base16.DecodeInto(id[:], hex); err != nil {
		return "", err
	}

	return EncodeToString(id), nil
}

// ToHex converts a 22 character base62 identifier to lowercase hex. Longer
// input is ErrInvalidLength, shorter input ErrTruncated.
func ToHex(s string) (string, error) {
	if len(s) > EncodedLen {
		return "", ErrInvalidLength
	}
	id, err := DecodeString(s)
	if err != nil {
		return "", err
	}

	return base16.EncodeToString(id[:]), nil
}
