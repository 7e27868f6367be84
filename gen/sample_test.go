package gen_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sx/gen"
	"github.com/katalvlaran/sx/rnd"
)

func TestSetDefaultBudget(t *testing.T) {
	prev := gen.SetDefaultBudget(7)
	t.Cleanup(func() { gen.SetDefaultBudget(prev) })

	require.Equal(t, gen.InitialDefaultBudget, prev)
	require.Equal(t, 7, gen.DefaultBudget())

	inner := newProbe(gen.IntRange(1, 6))
	g := gen.Filter[int](inner, func(int) bool { return false })
	_, err := gen.Sample(rnd.New(1), g)
	require.ErrorIs(t, err, gen.ErrUnsatisfied)
	require.EqualValues(t, 7, inner.calls.Load(), "Sample runs with the default budget")

	requirePanicIs(t, gen.ErrInvalidBudget, func() { gen.SetDefaultBudget(0) })
	require.Equal(t, 7, gen.DefaultBudget(), "rejected value leaves the budget untouched")
}

func TestSampleBudget(t *testing.T) {
	t.Parallel()

	v, err := gen.SampleBudget(rnd.New(2), gen.IntRange(4, 4), 1)
	require.NoError(t, err)
	require.Equal(t, 4, v)

	_, err = gen.SampleBudget(rnd.New(2), gen.Never[int](), 3)
	require.Error(t, err)
	require.True(t, errors.Is(err, gen.ErrUnsatisfied))
	require.Contains(t, err.Error(), "budget=3")
}

func TestMustSample(t *testing.T) {
	t.Parallel()

	require.Equal(t, "ok", gen.MustSample(rnd.New(3), gen.Const("ok")))
	requirePanicIs(t, gen.ErrUnsatisfied, func() { gen.MustSample(rnd.New(3), gen.Never[string]()) })
}

func TestProduceContractViolations(t *testing.T) {
	t.Parallel()

	die := gen.IntRange(1, 6)
	requirePanicIs(t, gen.ErrInvalidBudget, func() { die.Produce(rnd.New(4), 0) })
	requirePanicIs(t, gen.ErrInvalidBudget, func() { gen.OneOf(1, 2).Produce(rnd.New(4), -1) })
	requirePanicIs(t, gen.ErrNilStream, func() { die.Produce(nil, 1) })
	requirePanicIs(t, gen.ErrInvalidBudget, func() { gen.SampleBudget(rnd.New(4), die, 0) })
	requirePanicIs(t, gen.ErrNilArgument, func() { gen.SampleBudget[int](rnd.New(4), nil, 1) })
}
