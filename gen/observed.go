// SPDX-License-Identifier: MIT
// Package: sx/gen
//
// observed.go - opt-in observation of a generator's samples.

package gen

import (
	"time"

	"github.com/katalvlaran/sx/observe"
	"github.com/katalvlaran/sx/rnd"
)

// Observed returns a generator behaving exactly like g that additionally
// reports each Produce call to obs under name. The outcome is never altered.
func Observed[T any](name string, g Generator[T], obs observe.Observer) Generator[T] {
	mustNotBeNil(methodObserved, "generator", g == nil)
	mustNotBeNil(methodObserved, "observer", obs == nil)

	return FromFunc(func(s *rnd.Stream, budget int) Outcome[T] {
		start := time.Now()
		out := g.Produce(s, budget)
		obs.OnSample(observe.Sample{
			Name:     name,
			Budget:   budget,
			OK:       out.Ok(),
			Duration: time.Since(start),
		})

		return out
	})
}
