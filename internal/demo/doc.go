// SPDX-License-Identifier: MIT
// Package: sx/internal/demo
//
// doc.go - the programs behind the sx command.

// Package demo holds the two demonstration programs shipped with sx: a
// Monte-Carlo estimate of pi built from a filtered point-in-disk generator,
// and a nested pseudo-Latin text generator. Both are thin compositions of the
// gen combinators; cmd/sx only parses flags and prints results.
package demo

import "errors"

// ErrInvalidParams is returned when demo parameters are out of range.
var ErrInvalidParams = errors.New("demo: invalid parameters")
