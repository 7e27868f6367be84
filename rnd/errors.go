// SPDX-License-Identifier: MIT
// Package: sx/rnd
//
// errors.go - sentinel errors for the rnd package.
//
// Callers branch with errors.Is; panics raised by this package always carry
// an error wrapping one of these sentinels.

package rnd

import "errors"

// ErrInvalidBound indicates an empty or inverted draw interval
// (Intn(0), Between(5, 4), Streams(-1), ...).
var ErrInvalidBound = errors.New("rnd: invalid bound")

// ErrEntropy indicates the OS entropy source could not seed the counter.
var ErrEntropy = errors.New("rnd: entropy source unavailable")
