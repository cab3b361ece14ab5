// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package gid

import (
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// MaxDeriveKeyLen is the longest key accepted by Derive.
const MaxDeriveKeyLen = blake2b.Size

// Derive returns the identifier of name under key: the keyed BLAKE2b-128
// digest of name. The same key and name always give the same identifier, and
// identifiers under different keys are unrelated.
//
// key may be empty and must not exceed MaxDeriveKeyLen bytes.
func Derive[T any](key []byte, name string) (GID[[16]byte, T], error) {
	var g GID[[16]byte, T]

	h, err := blake2b.New(len(g.raw), key)
	if err != nil {
		return g, fmt.Errorf("%w: %w", errInvalidDeriveKey, err)
	}
	if _, err = h.Write([]byte(name)); err != nil {
		return g, fmt.Errorf("%w: %w", errFailedToGenerate, err)
	}
	copy(g.raw[:], h.Sum(nil))

	return g, nil
}

// DeriveChild returns the identifier of name within the namespace parent.
func DeriveChild[T, P any](parent GID[[16]byte, P], name string) (GID[[16]byte, T], error) {
	return Derive[T](parent.raw[:], name)
}
