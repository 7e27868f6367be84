// SPDX-License-Identifier: MIT
// Package: sx/gen
//
// generator.go - the Generator abstraction and its function-backed shape.
//
// Contract:
//   - Produce never panics to say "no value"; that is Failure.
//   - Produce panics on budget < 1 (ErrInvalidBudget) or a nil stream
//     (ErrNilStream), before any randomness is consumed.
//   - Generators are immutable; composing them never mutates an operand.

package gen

import "github.com/katalvlaran/sx/rnd"

// Generator draws values of type T.
type Generator[T any] interface {
	// Produce draws one value from s, giving rejection sampling at most
	// budget attempts. budget must be ≥ 1 and s must be non-nil.
	Produce(s *rnd.Stream, budget int) Outcome[T]
}

// Func is the body of a function-backed generator. It is only ever called
// with a valid stream and budget.
type Func[T any] func(s *rnd.Stream, budget int) Outcome[T]

// funcGen adapts a Func to Generator and enforces the Produce contract.
type funcGen[T any] struct {
	fn Func[T]
}

// FromFunc wraps fn as a Generator. Panics if fn is nil.
func FromFunc[T any](fn Func[T]) Generator[T] {
	mustNotBeNil(methodFromFunc, "fn", fn == nil)

	return funcGen[T]{fn: fn}
}

// Produce implements Generator.
func (g funcGen[T]) Produce(s *rnd.Stream, budget int) Outcome[T] {
	checkProduce(s, budget)

	return g.fn(s, budget)
}

// checkProduce validates the arguments shared by every Produce.
func checkProduce(s *rnd.Stream, budget int) {
	if s == nil {
		panic(faultf(methodProduce, ErrNilStream, "stream is required"))
	}
	if budget < 1 {
		panic(faultf(methodProduce, ErrInvalidBudget, "budget=%d", budget))
	}
}

// Const returns a generator that always succeeds with v and draws no randomness.
func Const[T any](v T) Generator[T] {
	return FromFunc(func(*rnd.Stream, int) Outcome[T] {
		return Success(v)
	})
}

// Never returns a generator that always fails.
func Never[T any]() Generator[T] {
	return FromFunc(func(*rnd.Stream, int) Outcome[T] {
		return Failure[T]()
	})
}
