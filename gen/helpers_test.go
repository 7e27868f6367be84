package gen_test

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sx/gen"
	"github.com/katalvlaran/sx/rnd"
)

// requirePanicIs runs fn and asserts that it panics with an error matching target.
func requirePanicIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic matching %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.Is(err, target), "panic %q does not match %v", err, target)
	}()
	fn()
}

// probe wraps a generator and records how it is called.
type probe[T any] struct {
	inner   gen.Generator[T]
	calls   atomic.Int64
	budgets []int
}

func newProbe[T any](inner gen.Generator[T]) *probe[T] {
	return &probe[T]{inner: inner}
}

func (p *probe[T]) Produce(s *rnd.Stream, budget int) gen.Outcome[T] {
	p.calls.Add(1)
	p.budgets = append(p.budgets, budget)
	return p.inner.Produce(s, budget)
}

// drawN samples g n times from a stream seeded with seed.
func drawN[T any](t *testing.T, g gen.Generator[T], seed uint64, n, budget int) []T {
	t.Helper()
	s := rnd.New(seed)
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, ok := g.Produce(s, budget).Get()
		require.True(t, ok, "draw %d failed", i)
		out = append(out, v)
	}
	return out
}
