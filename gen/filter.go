// SPDX-License-Identifier: MIT
// Package: sx/gen
//
// filter.go - bounded rejection sampling.
//
// Attempt accounting (one loop per Filter):
//   • The loop runs at most `budget` iterations.
//   • Each iteration draws from the source with budget 1, so a nested filter
//     inside the source gets exactly one try per outer iteration.
//   • A failed inner draw and a rejected value both consume one iteration.
//   • Exhaustion is Failure, never a default value and never a panic.

package gen

import "github.com/katalvlaran/sx/rnd"

// innerBudget is the budget handed to the source on every filter iteration.
const innerBudget = 1

// Filter returns a generator yielding only values of g satisfying pred.
func Filter[A any](g Generator[A], pred func(A) bool) Generator[A] {
	mustNotBeNil(methodFilter, "generator", g == nil)
	mustNotBeNil(methodFilter, "predicate", pred == nil)

	return FromFunc(func(s *rnd.Stream, budget int) Outcome[A] {
		for attempt := 0; attempt < budget; attempt++ {
			a, ok := g.Produce(s, innerBudget).Get()
			if ok && pred(a) {
				return Success(a)
			}
		}
		if logger.DebugEnabled() {
			logger.Debug("filter budget exhausted", "budget", budget, "seed", s.Seed())
		}

		return Failure[A]()
	})
}
