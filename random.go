// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package gid

import (
	"fmt"

	"github.com/pion/randutil"
)

// Random returns an identifier filled from a cryptographically secure source.
func Random[A Array, T any]() (GID[A, T], error) {
	var g GID[A, T]
	for i := 0; i < len(g.raw); i += 8 {
		v, err := randutil.CryptoUint64()
		if err != nil {
			return GID[A, T]{}, fmt.Errorf("%w: %w", errRandomSource, err)
		}
		for j := 0; j < 8 && i+j < len(g.raw); j++ {
			g.raw[i+j] = byte(v >> (56 - 8*j))
		}
	}

	return g, nil
}
