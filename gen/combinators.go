// SPDX-License-Identifier: MIT
// Package: sx/gen
//
// combinators.go - Map, Bind, BindWith and Sequence.
//
// Every combinator here passes the caller's budget through unchanged and
// short-circuits on the first failure.

package gen

import (
	"slices"

	"github.com/katalvlaran/sx/rnd"
)

// Map returns a generator applying f to each value drawn from g. A failure of
// g is returned as is and f is not called. f should be pure.
func Map[A, B any](g Generator[A], f func(A) B) Generator[B] {
	mustNotBeNil(methodMap, "generator", g == nil)
	mustNotBeNil(methodMap, "f", f == nil)

	return FromFunc(func(s *rnd.Stream, budget int) Outcome[B] {
		return mapOutcome(g.Produce(s, budget), f)
	})
}

// Bind returns the dependent composition of g and f: draw a from g, then draw
// from f(a) with the same budget. f is not called when g fails.
func Bind[A, B any](g Generator[A], f func(A) Generator[B]) Generator[B] {
	mustNotBeNil(methodBind, "generator", g == nil)
	mustNotBeNil(methodBind, "f", f == nil)

	return FromFunc(func(s *rnd.Stream, budget int) Outcome[B] {
		a, ok := g.Produce(s, budget).Get()
		if !ok {
			return Failure[B]()
		}

		return f(a).Produce(s, budget)
	})
}

// BindWith is Bind followed by combine(a, b), so both draws stay visible to
// the result (the query-comprehension form of select-many).
func BindWith[A, B, C any](g Generator[A], f func(A) Generator[B], combine func(A, B) C) Generator[C] {
	mustNotBeNil(methodBindWith, "generator", g == nil)
	mustNotBeNil(methodBindWith, "f", f == nil)
	mustNotBeNil(methodBindWith, "combine", combine == nil)

	return FromFunc(func(s *rnd.Stream, budget int) Outcome[C] {
		a, ok := g.Produce(s, budget).Get()
		if !ok {
			return Failure[C]()
		}
		b, ok := f(a).Produce(s, budget).Get()
		if !ok {
			return Failure[C]()
		}

		return Success(combine(a, b))
	})
}

// Sequence returns a generator drawing from each of gs in order with the same
// budget. The result preserves input order; if any draw fails the whole
// sequence fails and partial results are discarded. gs is copied.
func Sequence[A any](gs []Generator[A]) Generator[[]A] {
	for _, g := range gs {
		mustNotBeNil(methodSequence, "element generator", g == nil)
	}
	gs = slices.Clone(gs)

	return FromFunc(func(s *rnd.Stream, budget int) Outcome[[]A] {
		return drawAll(s, budget, len(gs), func(i int) Generator[A] { return gs[i] })
	})
}

// drawAll draws n values, the i-th from at(i), stopping at the first failure.
func drawAll[A any](s *rnd.Stream, budget, n int, at func(int) Generator[A]) Outcome[[]A] {
	out := make([]A, 0, n)
	for i := 0; i < n; i++ {
		v, ok := at(i).Produce(s, budget).Get()
		if !ok {
			return Failure[[]A]()
		}
		out = append(out, v)
	}

	return Success(out)
}
