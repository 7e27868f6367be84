// SPDX-License-Identifier: MIT
// Package: sx/gen
//
// set.go - the set-backed generator: uniform choice with replacement.
//
// The candidate sequence is materialised into a slice on the first Produce
// and cached for the generator's lifetime (sync.Once, so shared generators
// materialise exactly once). The cache never changes the distribution.
// A sequence given to OneOfSeq is iterated exactly once in total, so
// single-use sequences (channels, readers) keep every candidate.

package gen

import (
	"iter"
	"slices"
	"sync"

	"github.com/katalvlaran/sx/rnd"
)

type setGen[T any] struct {
	once  sync.Once
	fill  func() []T
	items []T
}

// OneOf returns a generator drawing uniformly with replacement from xs.
// xs is copied, so later changes to the caller's slice are not observed.
// Panics if xs is empty.
func OneOf[T any](xs ...T) Generator[T] {
	if len(xs) == 0 {
		panic(faultf(methodOneOf, ErrEmptySet, "no candidates"))
	}
	xs = slices.Clone(xs)

	return &setGen[T]{fill: func() []T { return xs }}
}

// OneOfSeq returns a generator drawing uniformly with replacement from the
// values of seq. The first value is pulled here to reject an empty seq; the
// rest are pulled on the first Produce, continuing the same iteration.
// Until then seq stays suspended. Panics if seq is nil or yields nothing.
func OneOfSeq[T any](seq iter.Seq[T]) Generator[T] {
	mustNotBeNil(methodOneOfSeq, "seq", seq == nil)

	next, stop := iter.Pull(seq)
	first, ok := next()
	if !ok {
		stop()
		panic(faultf(methodOneOfSeq, ErrEmptySet, "sequence yielded no candidates"))
	}

	return &setGen[T]{fill: func() []T {
		defer stop()
		items := []T{first}
		for v, ok := next(); ok; v, ok = next() {
			items = append(items, v)
		}

		return items
	}}
}

func (g *setGen[T]) Produce(s *rnd.Stream, budget int) Outcome[T] {
	checkProduce(s, budget)

	g.once.Do(func() {
		g.items = g.fill()
		g.fill = nil
	})

	return Success(g.items[s.Intn(len(g.items))])
}
