// SPDX-License-Identifier: MIT
// Package: sx/gen
//
// take.go - fixed-count and drawn-count aggregates.
//
// Contract:
//   - count == 0 always succeeds with an empty, non-nil slice.
//   - count < 0 panics with ErrInvalidCount: at construction for the fixed
//     variants, at sampling time for the *Drawn variants (the count is only
//     known once drawn).
//   - Any element failure fails the whole aggregate.

package gen

import "github.com/katalvlaran/sx/rnd"

// Take returns a generator of count independent draws from g, equivalent to
// Sequence over count copies of g.
func Take[A any](g Generator[A], count int) Generator[[]A] {
	return take(methodTake, g, count)
}

// TakeDrawn first draws the element count from count, then behaves as
// Take(g, n). The count draw and the element draws share the budget.
func TakeDrawn[A any](count Generator[int], g Generator[A]) Generator[[]A] {
	mustNotBeNil(methodTakeDrawn, "count generator", count == nil)
	mustNotBeNil(methodTakeDrawn, "generator", g == nil)

	return Bind(count, func(n int) Generator[[]A] {
		return take(methodTakeDrawn, g, n)
	})
}

func take[A any](method string, g Generator[A], count int) Generator[[]A] {
	mustNotBeNil(method, "generator", g == nil)
	if count < 0 {
		panic(faultf(method, ErrInvalidCount, "count=%d", count))
	}

	return FromFunc(func(s *rnd.Stream, budget int) Outcome[[]A] {
		return drawAll(s, budget, count, func(int) Generator[A] { return g })
	})
}

// TakeNoRepeat returns a generator of count draws from g in which no element
// equals its immediate predecessor. Values may recur further apart. Each
// position after the first is drawn from Filter(g, v != previous) with the
// full budget; if any position fails, the aggregate fails.
func TakeNoRepeat[A comparable](count int, g Generator[A]) Generator[[]A] {
	return takeNoRepeat(methodTakeNoRepeat, count, g, equal[A])
}

// TakeNoRepeatFunc is TakeNoRepeat for element types that are not comparable;
// eq decides whether two adjacent values count as a repeat.
func TakeNoRepeatFunc[A any](count int, g Generator[A], eq func(a, b A) bool) Generator[[]A] {
	return takeNoRepeat(methodTakeNoRepeatFunc, count, g, eq)
}

// TakeNoRepeatDrawn draws the count from count, then behaves as
// TakeNoRepeat(n, g).
func TakeNoRepeatDrawn[A comparable](count Generator[int], g Generator[A]) Generator[[]A] {
	mustNotBeNil(methodTakeNoRepeatDrawn, "count generator", count == nil)
	mustNotBeNil(methodTakeNoRepeatDrawn, "generator", g == nil)

	return Bind(count, func(n int) Generator[[]A] {
		return takeNoRepeat(methodTakeNoRepeatDrawn, n, g, equal[A])
	})
}

func equal[A comparable](a, b A) bool {
	return a == b
}

func takeNoRepeat[A any](method string, count int, g Generator[A], eq func(a, b A) bool) Generator[[]A] {
	mustNotBeNil(method, "generator", g == nil)
	mustNotBeNil(method, "eq", eq == nil)
	if count < 0 {
		panic(faultf(method, ErrInvalidCount, "count=%d", count))
	}

	return FromFunc(func(s *rnd.Stream, budget int) Outcome[[]A] {
		out := make([]A, 0, count)
		if count == 0 {
			return Success(out)
		}

		first, ok := g.Produce(s, budget).Get()
		if !ok {
			return Failure[[]A]()
		}
		out = append(out, first)

		for i := 1; i < count; i++ {
			prev := out[i-1]
			next := Filter(g, func(a A) bool { return !eq(a, prev) })
			v, ok := next.Produce(s, budget).Get()
			if !ok {
				return Failure[[]A]()
			}
			out = append(out, v)
		}

		return Success(out)
	})
}
