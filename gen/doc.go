// Package gen provides composable random-value generators: a small algebra
// of leaf generators and combinators whose sampling either yields a value or
// reports an explicit failure.
//
// What is a Generator?
//
//	A Generator[T] is an immutable, lazily evaluated description of how to
//	draw a T. Nothing happens until Produce is called with a stream and an
//	attempt budget:
//
//	    out := g.Produce(stream, budget) // Outcome[T]: Success(v) or Failure
//
// The package offers the following key components:
//
//   - Leaf generators:
//     – IntRange:     integers uniformly in the closed interval [lo, hi].
//     – FloatRange:   reals uniformly in the half-open interval [lo, hi).
//     – OneOf:        uniform choice with replacement over a fixed set.
//     – OneOfSeq:     as OneOf, materialising an iter.Seq on first use.
//     – Const, Never: the always-succeeding and always-failing generators.
//   - Combinators:
//     – Map:          transform a drawn value.
//     – Bind:         let the next generator depend on the previous draw.
//     – BindWith:     Bind plus a combine step (select-many).
//     – Filter:       bounded rejection sampling against a predicate.
//     – Sequence:     draw an ordered list of independent generators.
//   - Aggregates:
//     – Take, TakeDrawn:                  fixed or randomly drawn count.
//     – TakeNoRepeat, TakeNoRepeatDrawn:  no two adjacent elements equal.
//     – TakeNoRepeatFunc:                 the same with a custom equality.
//   - Sampling:
//     – Sample, SampleBudget, MustSample, DefaultBudget, SetDefaultBudget.
//   - Observation:
//     – Observed: report every sample of a generator to an observe.Observer.
//
// Failure policy:
//
//   - Only Filter and Never create failures; every other combinator propagates
//     them unchanged and short-circuits (Bind never calls its continuation,
//     Sequence discards partial results).
//   - Filter runs at most `budget` iterations. Each iteration draws once from
//     its source with budget 1, so the cost of nested filters is additive per
//     level rather than multiplicative. A failed inner draw uses up the
//     iteration just like a rejected value does.
//   - Panics are reserved for contract violations: invalid constructor
//     arguments (at construction time), budget < 1 or a nil stream (at
//     sampling time), and unwrapping a failed Outcome. Every panic value is
//     an error matching one of the package sentinels via errors.Is.
//
// Concurrency:
//
//	Generators may be shared freely between goroutines. Streams may not: give
//	each goroutine its own rnd.Stream (see rnd.Next and rnd.Streams).
//
// Quick example (a point uniformly inside the unit disk):
//
//	pt := gen.Filter(
//	    gen.BindWith(gen.FloatRange(-1, 1),
//	        func(float64) gen.Generator[float64] { return gen.FloatRange(-1, 1) },
//	        func(x, y float64) [2]float64 { return [2]float64{x, y} }),
//	    func(p [2]float64) bool { return p[0]*p[0]+p[1]*p[1] <= 1 },
//	)
//	v, err := gen.Sample(rnd.Next(), pt)
package gen
