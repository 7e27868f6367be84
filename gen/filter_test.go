package gen_test

import (
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sx/gen"
	"github.com/katalvlaran/sx/logging"
	"github.com/katalvlaran/sx/rnd"
)

func TestFilterUnsatisfiableAlwaysFails(t *testing.T) {
	t.Parallel()

	g := gen.Filter(gen.IntRange(1, 6), func(x int) bool { return x > 6 })
	for budget := 1; budget <= 50; budget++ {
		require.False(t, g.Produce(rnd.New(uint64(budget)), budget).Ok(), "budget=%d", budget)
	}
}

func TestFilterConsumesOneAttemptPerDraw(t *testing.T) {
	t.Parallel()

	inner := newProbe(gen.IntRange(1, 6))
	g := gen.Filter[int](inner, func(int) bool { return false })

	require.False(t, g.Produce(rnd.New(1), 17).Ok())
	require.EqualValues(t, 17, inner.calls.Load())
	for _, b := range inner.budgets {
		require.Equal(t, 1, b, "inner draws run with budget 1")
	}
}

func TestFilterInnerFailureCountsAsAttempt(t *testing.T) {
	t.Parallel()

	inner := newProbe(gen.Never[int]())
	g := gen.Filter[int](inner, func(int) bool { return true })

	require.False(t, g.Produce(rnd.New(2), 9).Ok())
	require.EqualValues(t, 9, inner.calls.Load())
}

func TestFilterHonoursPredicate(t *testing.T) {
	t.Parallel()

	even := gen.Filter(gen.IntRange(0, 100), func(x int) bool { return x%2 == 0 })
	s := rnd.New(3)
	for i := 0; i < 500; i++ {
		v, ok := even.Produce(s, 100).Get()
		require.True(t, ok)
		require.Zero(t, v%2)
	}
}

func TestFilterStopsAtFirstAcceptedDraw(t *testing.T) {
	t.Parallel()

	inner := newProbe(gen.Const(1))
	g := gen.Filter[int](inner, func(int) bool { return true })

	require.Equal(t, 1, g.Produce(rnd.New(4), 100).Value())
	require.EqualValues(t, 1, inner.calls.Load())
}

// Exhaustion logging reads the logger level on every failed draw; switching
// levels underneath running samplers must stay race free.
func TestFilterSamplingDuringLoggingInit(t *testing.T) {
	logging.Reset()
	defer logging.Reset()

	never := gen.Filter(gen.IntRange(1, 6), func(x int) bool { return x > 6 })
	stop := make(chan struct{})
	var wg sync.WaitGroup
	for _, s := range rnd.Streams(4) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				if never.Produce(s, 2).Ok() {
					t.Error("unsatisfiable filter produced a value")
					return
				}
			}
		}()
	}

	for i := 0; i < 20; i++ {
		lvl := logging.LevelInfo
		if i%2 == 0 {
			lvl = logging.LevelDebug
		}
		require.NoError(t, logging.Initialize(io.Discard, logging.FmtLogfmt, lvl, nil))
		logging.Reset()
	}
	close(stop)
	wg.Wait()
}
