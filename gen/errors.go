// SPDX-License-Identifier: MIT
// Package: sx/gen
//
// errors.go - sentinel errors for the gen package.
//
// Error policy:
//   • Exhausting an attempt budget is NOT an error: it is a Failure outcome.
//   • Sentinels below classify contract violations. They reach callers either
//     as panic values (constructors, Produce, Outcome.Value, MustSample) or as
//     returned errors (Outcome.Result, Sample, SampleBudget).
//   • Messages are prefixed with the operation, e.g. "gen.IntRange: ...",
//     and always wrap the sentinel with %w; branch with errors.Is.

package gen

import (
	"errors"
	"fmt"
)

// ErrUnsatisfied indicates that a value was requested from a failed outcome:
// the generator found no value within its attempt budget.
var ErrUnsatisfied = errors.New("gen: no value satisfied the constraints")

// ErrInvalidBudget indicates an attempt budget below one.
var ErrInvalidBudget = errors.New("gen: attempt budget must be ≥ 1")

// ErrInvalidCount indicates a negative element count for Take-style aggregates.
var ErrInvalidCount = errors.New("gen: count must be ≥ 0")

// ErrInvalidRange indicates inverted, empty or non-finite range bounds.
var ErrInvalidRange = errors.New("gen: invalid range bounds")

// ErrEmptySet indicates an empty candidate collection for OneOf/OneOfSeq.
var ErrEmptySet = errors.New("gen: empty candidate set")

// ErrNilArgument indicates a nil generator, function or predicate argument.
var ErrNilArgument = errors.New("gen: nil argument")

// ErrNilStream indicates Produce was called without a randomness stream.
var ErrNilStream = errors.New("gen: nil stream")

// Method tokens used as error prefixes.
const (
	methodFromFunc          = "gen.FromFunc"
	methodProduce           = "gen.Produce"
	methodIntRange          = "gen.IntRange"
	methodFloatRange        = "gen.FloatRange"
	methodOneOf             = "gen.OneOf"
	methodOneOfSeq          = "gen.OneOfSeq"
	methodMap               = "gen.Map"
	methodBind              = "gen.Bind"
	methodBindWith          = "gen.BindWith"
	methodFilter            = "gen.Filter"
	methodSequence          = "gen.Sequence"
	methodTake              = "gen.Take"
	methodTakeDrawn         = "gen.TakeDrawn"
	methodTakeNoRepeat      = "gen.TakeNoRepeat"
	methodTakeNoRepeatFunc  = "gen.TakeNoRepeatFunc"
	methodTakeNoRepeatDrawn = "gen.TakeNoRepeatDrawn"
	methodObserved          = "gen.Observed"
	methodSetDefaultBudget  = "gen.SetDefaultBudget"
	methodSample            = "gen.Sample"
)

// faultf builds "<method>: <message>: <sentinel>" so the result both reads
// well and matches the sentinel under errors.Is.
func faultf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}

// mustNotBeNil panics with ErrNilArgument when isNil is set.
func mustNotBeNil(method, what string, isNil bool) {
	if isNil {
		panic(faultf(method, ErrNilArgument, "%s is nil", what))
	}
}
