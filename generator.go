// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package gid

import (
	"encoding/binary"
	"math"
	"sync"
	"time"

	"github.com/pion/logging"
)

// GeneratorConfig configures a Generator.
type GeneratorConfig struct {
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	// LoggerFactory is used to create the generator logger.
	LoggerFactory logging.LoggerFactory
}

// Generator produces 128-bit identifiers that sort by creation time. The
// layout is 8 bytes of Unix milliseconds followed by an 8 byte sequence, both
// big-endian, so byte order is creation order within a process.
//
// If the clock goes backwards the generator stays on the last millisecond it
// saw. If the sequence is exhausted within a millisecond, Next waits for the
// clock to move on.
type Generator[T any] struct {
	mu       sync.Mutex
	now      func() time.Time
	lastMs   int64
	sequence uint64
	log      logging.LeveledLogger
}

// NewGenerator creates a Generator.
func NewGenerator[T any](config GeneratorConfig) *Generator[T] {
	if config.Now == nil {
		config.Now = time.Now
	}
	if config.LoggerFactory == nil {
		config.LoggerFactory = logging.NewDefaultLoggerFactory()
	}

	return &Generator[T]{
		now: config.Now,
		log: config.LoggerFactory.NewLogger("gid"),
	}
}

// Next returns the next identifier.
func (g *Generator[T]) Next() GID[[16]byte, T] {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms < g.lastMs {
		g.log.Warnf("Clock moved back %dms, holding at %d", g.lastMs-ms, g.lastMs)
		ms = g.lastMs
	}

	switch {
	case ms != g.lastMs:
		g.sequence = 0
	case g.sequence == math.MaxUint64:
		g.log.Debugf("Sequence exhausted at %d, waiting for next millisecond", ms)
		for ms <= g.lastMs {
			time.Sleep(time.Millisecond / 8)
			ms = g.now().UnixMilli()
		}
		g.sequence = 0
	default:
		g.sequence++
	}

	g.lastMs = ms

	var id GID[[16]byte, T]
	binary.BigEndian.PutUint64(id.raw[0:8], uint64(ms)) // nolint:gosec // G115
	binary.BigEndian.PutUint64(id.raw[8:16], g.sequence)

	return id
}

// Time returns the creation time recorded in an identifier made by a
// Generator.
func Time[T any](id GID[[16]byte, T]) time.Time {
	return time.UnixMilli(int64(binary.BigEndian.Uint64(id.raw[0:8]))) // nolint:gosec // G115
}
