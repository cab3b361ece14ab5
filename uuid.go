// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package gid

import (
	"fmt"

	"github.com/google/uuid"
)

// FromUUID wraps the 16 bytes of u.
func FromUUID[T any](u uuid.UUID) GID[[16]byte, T] {
	return GID[[16]byte, T]{raw: u}
}

// UUID returns the identifier as a UUID. Only 16 byte identifiers convert;
// other widths return ErrUnsupportedSize.
func (g GID[A, T]) UUID() (uuid.UUID, error) {
	id, ok := g.array16()
	if !ok {
		return uuid.Nil, ErrUnsupportedSize
	}

	return uuid.UUID(id), nil
}

// NewUUIDv4 returns a random version 4 UUID as an identifier.
func NewUUIDv4[T any]() (GID[[16]byte, T], error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return GID[[16]byte, T]{}, fmt.Errorf("%w: %w", errFailedToGenerate, err)
	}

	return FromUUID[T](u), nil
}

// NewUUIDv7 returns a time ordered version 7 UUID as an identifier.
func NewUUIDv7[T any]() (GID[[16]byte, T], error) {
	u, err := uuid.NewV7()
	if err != nil {
		return GID[[16]byte, T]{}, fmt.Errorf("%w: %w", errFailedToGenerate, err)
	}

	return FromUUID[T](u), nil
}
