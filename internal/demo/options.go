// SPDX-License-Identifier: MIT
// Package: sx/internal/demo
//
// options.go - functional options for the lorem generator.
//
// Contract:
//   • Options are functional (type LoremOption func(*loremConfig)).
//   • Option constructors validate and panic on meaningless input; the
//     generator built from a config never panics at sampling time.
//   • Ranges are inclusive on both ends.

package demo

import (
	"fmt"
	"slices"
)

// LoremOption customizes LoremText by mutating a loremConfig before the
// generator is composed.
type LoremOption func(*loremConfig)

// WithDictionary replaces the word set. Panics on an empty dictionary.
func WithDictionary(words ...string) LoremOption {
	if len(words) == 0 {
		panic(fmt.Errorf("demo.WithDictionary: %w: empty dictionary", ErrInvalidParams))
	}
	words = slices.Clone(words)

	return func(c *loremConfig) {
		c.dictionary = words
	}
}

// WithParagraphs sets how many paragraphs a text has.
func WithParagraphs(lo, hi int) LoremOption {
	r := mustSpan("demo.WithParagraphs", lo, hi)

	return func(c *loremConfig) {
		c.paragraphs = r
	}
}

// WithSentences sets how many sentences a paragraph has.
func WithSentences(lo, hi int) LoremOption {
	r := mustSpan("demo.WithSentences", lo, hi)

	return func(c *loremConfig) {
		c.sentences = r
	}
}

// WithWords sets how many words a sentence has.
func WithWords(lo, hi int) LoremOption {
	r := mustSpan("demo.WithWords", lo, hi)

	return func(c *loremConfig) {
		c.words = r
	}
}

// mustSpan panics unless 1 <= lo <= hi.
func mustSpan(method string, lo, hi int) span {
	if lo < 1 || lo > hi {
		panic(fmt.Errorf("%s: %w: need 1 <= lo <= hi, got [%d, %d]", method, ErrInvalidParams, lo, hi))
	}

	return span{lo: lo, hi: hi}
}
