// SPDX-License-Identifier: MIT
// Package: sx/gen
//
// outcome.go - Outcome[T], the two-variant result of one sampling call.

package gen

import "fmt"

// Outcome is the result of Produce: either a success carrying a value or a
// failure carrying nothing. The zero value is a failure.
type Outcome[T any] struct {
	value T
	ok    bool
}

// Success returns a successful outcome holding v.
func Success[T any](v T) Outcome[T] {
	return Outcome[T]{value: v, ok: true}
}

// Failure returns a failed outcome.
func Failure[T any]() Outcome[T] {
	return Outcome[T]{}
}

// Ok reports whether the outcome holds a value.
func (o Outcome[T]) Ok() bool {
	return o.ok
}

// Get returns the value and whether there is one, comma-ok style.
func (o Outcome[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Result returns the value, or an error matching ErrUnsatisfied.
func (o Outcome[T]) Result() (T, error) {
	if !o.ok {
		var zero T
		return zero, ErrUnsatisfied
	}

	return o.value, nil
}

// Value returns the value of a successful outcome. Calling it on a failure is
// a programming error and panics with an error matching ErrUnsatisfied.
func (o Outcome[T]) Value() T {
	if !o.ok {
		panic(fmt.Errorf("gen.Outcome.Value: called on failure: %w", ErrUnsatisfied))
	}

	return o.value
}

// String renders the value with %v, or "Nothing" for a failure.
func (o Outcome[T]) String() string {
	if !o.ok {
		return "Nothing"
	}

	return fmt.Sprintf("%v", o.value)
}

// mapOutcome applies f to a success and propagates a failure.
func mapOutcome[A, B any](o Outcome[A], f func(A) B) Outcome[B] {
	if !o.ok {
		return Failure[B]()
	}

	return Success(f(o.value))
}
