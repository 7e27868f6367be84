// SPDX-License-Identifier: MIT
// Package: sx/rnd
//
// seed.go - the process-wide seed counter.
//
// Contract:
//   - The counter is initialised once from crypto/rand at package init.
//   - Next/Streams take consecutive values with a single atomic add each.
//   - SetCounter is the reproducibility hook; it does not touch live streams.

package rnd

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"sync/atomic"

	"github.com/katalvlaran/sx/logging"
)

var (
	counter atomic.Uint64

	logger = logging.GetLogger("rnd")
)

func init() {
	v, err := entropySeed()
	if err != nil {
		// A zero start keeps the package usable; streams stay distinct.
		logger.Warn("falling back to zero seed counter", "err", err)
		return
	}
	counter.Store(v)
}

// entropySeed reads 8 bytes of OS entropy.
func entropySeed() (uint64, error) {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrEntropy, err)
	}

	return binary.LittleEndian.Uint64(buf[:]), nil
}

// Counter returns the last seed handed out (or the start value if no stream
// has been created since the last SetCounter).
func Counter() uint64 {
	return counter.Load()
}

// SetCounter resets the seed counter. The next stream created is seeded with
// v+1. Streams that already exist are unaffected.
func SetCounter(v uint64) {
	counter.Store(v)
	logger.Info("seed counter reset", "value", v)
}

// Next returns a new Stream seeded with the next counter value.
func Next() *Stream {
	seed := counter.Add(1)
	if logger.DebugEnabled() {
		logger.Debug("stream created", "seed", seed)
	}

	return New(seed)
}

// Streams returns n streams with consecutive seeds, in index order. The block
// of seeds is reserved with one atomic add, so concurrent callers never
// interleave inside a block. Panics if n < 0.
func Streams(n int) []*Stream {
	if n < 0 {
		panic(fmt.Errorf("rnd.Streams: n=%d < 0: %w", n, ErrInvalidBound))
	}
	if n == 0 {
		return []*Stream{}
	}

	last := counter.Add(uint64(n))
	first := last - uint64(n) + 1
	out := make([]*Stream, n)
	for i := range out {
		out[i] = New(first + uint64(i))
	}
	if logger.DebugEnabled() {
		logger.Debug("streams created", "first_seed", first, "count", n)
	}

	return out
}
