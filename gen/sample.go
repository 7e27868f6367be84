// SPDX-License-Identifier: MIT
// Package: sx/gen
//
// sample.go - the process-wide default budget and convenience sampling.

package gen

import (
	"fmt"
	"sync/atomic"

	"github.com/katalvlaran/sx/logging"
	"github.com/katalvlaran/sx/rnd"
)

// InitialDefaultBudget is the default attempt budget at process start.
const InitialDefaultBudget = 100

var (
	defaultBudget atomic.Int64

	logger = logging.GetLogger("gen")
)

func init() {
	defaultBudget.Store(InitialDefaultBudget)
}

// DefaultBudget returns the budget used by Sample and MustSample.
func DefaultBudget() int {
	return int(defaultBudget.Load())
}

// SetDefaultBudget changes the process-wide default budget and returns the
// previous value. Panics with ErrInvalidBudget if n < 1.
func SetDefaultBudget(n int) int {
	if n < 1 {
		panic(faultf(methodSetDefaultBudget, ErrInvalidBudget, "budget=%d", n))
	}
	prev := int(defaultBudget.Swap(int64(n)))
	logger.Info("default budget changed", "from", prev, "to", n)

	return prev
}

// Sample draws one value from g with the default budget. A failure is
// reported as an error matching ErrUnsatisfied.
func Sample[T any](s *rnd.Stream, g Generator[T]) (T, error) {
	return SampleBudget(s, g, DefaultBudget())
}

// SampleBudget draws one value from g with an explicit budget.
func SampleBudget[T any](s *rnd.Stream, g Generator[T], budget int) (T, error) {
	mustNotBeNil(methodSample, "generator", g == nil)

	v, err := g.Produce(s, budget).Result()
	if err != nil {
		return v, fmt.Errorf("%s: budget=%d: %w", methodSample, budget, err)
	}

	return v, nil
}

// MustSample is Sample for callers with no recovery path: a failure panics
// with an error matching ErrUnsatisfied.
func MustSample[T any](s *rnd.Stream, g Generator[T]) T {
	v, err := Sample(s, g)
	if err != nil {
		panic(err)
	}

	return v
}
