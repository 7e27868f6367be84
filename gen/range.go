// SPDX-License-Identifier: MIT
// Package: sx/gen
//
// range.go - uniform range leaves. Both always succeed; bad bounds panic at
// construction, never at sampling.

package gen

import (
	"math"

	"github.com/katalvlaran/sx/rnd"
)

// IntRange returns a generator of integers uniform in the closed interval
// [lo, hi]. lo == hi is allowed and always yields lo. Panics if lo > hi.
func IntRange(lo, hi int) Generator[int] {
	if lo > hi {
		panic(faultf(methodIntRange, ErrInvalidRange, "lo=%d > hi=%d", lo, hi))
	}

	return FromFunc(func(s *rnd.Stream, _ int) Outcome[int] {
		return Success(s.Between(lo, hi))
	})
}

// FloatRange returns a generator of reals uniform in the half-open interval
// [lo, hi). Panics unless lo < hi and both bounds are finite.
func FloatRange(lo, hi float64) Generator[float64] {
	if !(lo < hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		panic(faultf(methodFloatRange, ErrInvalidRange, "[%g, %g) is empty or unbounded", lo, hi))
	}

	return FromFunc(func(s *rnd.Stream, _ int) Outcome[float64] {
		return Success(s.FloatBetween(lo, hi))
	})
}
