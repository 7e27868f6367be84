// SPDX-License-Identifier: MIT
// Package: sx/rnd
//
// stream.go - Stream, a single-owner PCG engine.

package rnd

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// Stream is an independent pseudo-random stream. The zero value is not
// usable; obtain streams from New, Next or Streams.
type Stream struct {
	rng  *rand.Rand
	seed uint64
}

// New returns a Stream seeded with seed. Use it directly to pin a seed in a
// test; everything else should go through Next so seeds stay unique.
func New(seed uint64) *Stream {
	return &Stream{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the value this stream was created with.
func (s *Stream) Seed() uint64 {
	return s.seed
}

// Uint64 returns a uniformly distributed 64-bit value.
func (s *Stream) Uint64() uint64 {
	return s.rng.Uint64()
}

// Float64 returns a value in the half-open interval [0.0, 1.0).
func (s *Stream) Float64() float64 {
	return s.rng.Float64()
}

// Intn returns a value in [0, n). Panics if n <= 0.
func (s *Stream) Intn(n int) int {
	if n <= 0 {
		panic(fmt.Errorf("rnd.Intn: n=%d <= 0: %w", n, ErrInvalidBound))
	}

	return s.rng.Intn(n)
}

// Between returns a value in the closed interval [lo, hi]. The whole int
// range is accepted. Panics if lo > hi.
func (s *Stream) Between(lo, hi int) int {
	if lo > hi {
		panic(fmt.Errorf("rnd.Between: lo=%d > hi=%d: %w", lo, hi, ErrInvalidBound))
	}

	// Width is computed in uint64 so [MinInt, MaxInt] does not overflow.
	width := uint64(hi) - uint64(lo)
	if width == math.MaxUint64 {
		return lo + int(s.rng.Uint64())
	}

	return lo + int(s.rng.Uint64n(width+1))
}

// FloatBetween returns a value in the half-open interval [lo, hi).
// Panics unless lo < hi and both are finite.
func (s *Stream) FloatBetween(lo, hi float64) float64 {
	if !(lo < hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		panic(fmt.Errorf("rnd.FloatBetween: [%g, %g) is empty or unbounded: %w", lo, hi, ErrInvalidBound))
	}

	u := s.rng.Float64()
	var v float64
	if width := hi - lo; math.IsInf(width, 1) {
		v = lo*(1-u) + hi*u
	} else {
		v = lo + u*width
	}
	// Rounding can land exactly on hi for very wide intervals.
	if v >= hi {
		v = math.Nextafter(hi, lo)
	}

	return v
}
