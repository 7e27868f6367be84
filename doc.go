// Package sx is a small library of composable random value generators:
// build a description of the values you want from a few primitives, then
// sample it as often as you like.
//
// 🚀 What is sx?
//
//	A generics-first toolkit that brings together:
//		• Leaves: integers and reals over a range, picks from a fixed set
//		• Combinators: Map, Bind, BindWith, Sequence
//		• Rejection sampling: Filter with an explicit attempt budget
//		• Aggregates: Take, TakeDrawn, TakeNoRepeat (no adjacent repeats)
//		• Randomness: independent per-goroutine streams from an atomic seed counter
//
// ✨ Why sx?
//
//   - Constraints compose: "a point inside a disk" is a Filter over a pair,
//     not a bespoke sampler.
//   - Failure is a value: an exhausted budget yields a failed Outcome, never
//     an endless loop or a made-up default.
//   - Reproducible: pin a seed with rnd.New or rnd.SetCounter and every draw
//     repeats.
//
// Everything is organized under a few subpackages:
//
//	gen/      - Generator, Outcome and every combinator
//	rnd/      - Stream and the process-wide seed counter
//	observe/  - optional sampling observers, including Prometheus metrics
//	logging/  - module-scoped structured logging used by the packages above
//	cmd/sx/   - the sx command: `sx pi` and `sx lorem`
//
// Quick example:
//
//	coord := gen.IntRange(-10, 10)
//	pair := gen.BindWith(coord, func(int) gen.Generator[int] { return coord },
//		func(x, y int) [2]int { return [2]int{x, y} })
//	disk := gen.Filter(pair, func(p [2]int) bool { return p[0]*p[0]+p[1]*p[1] < 25 })
//	points, err := gen.SampleBudget(rnd.Next(), gen.Take(disk, 10), 100)
//
//	go get github.com/katalvlaran/sx/gen
package sx
