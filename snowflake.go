// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package gid

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// SnowflakeNode produces 64-bit snowflake identifiers for one node.
type SnowflakeNode[T any] struct {
	node *snowflake.Node
}

// NewSnowflakeNode creates a SnowflakeNode. node must be in 0..1023.
func NewSnowflakeNode[T any](node int64) (*SnowflakeNode[T], error) {
	n, err := snowflake.NewNode(node)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidSnowflake, err)
	}

	return &SnowflakeNode[T]{node: n}, nil
}

// Next returns the next identifier. It is safe for concurrent use.
func (s *SnowflakeNode[T]) Next() GID[[8]byte, T] {
	return GID[[8]byte, T]{raw: s.node.Generate().IntBytes()}
}

// Snowflake returns the identifier as a snowflake ID.
func Snowflake[T any](id GID[[8]byte, T]) snowflake.ID {
	return snowflake.ParseIntBytes(id.raw)
}
