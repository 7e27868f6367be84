// SPDX-License-Identifier: MIT
// Package: sx/internal/demo
//
// config.go - lorem configuration and its defaults.
//
// Defaults:
//   • dictionary = Dictionary
//   • paragraphs = 3..7
//   • sentences  = 5..9
//   • words      = 7..20

package demo

import "slices"

// Dictionary is the default word set.
var Dictionary = []string{"Lorem", "Ipsum", "Dolor", "Sit", "Amet", "Am"}

const (
	defaultMinParagraphs = 3
	defaultMaxParagraphs = 7
	defaultMinSentences  = 5
	defaultMaxSentences  = 9
	defaultMinWords      = 7
	defaultMaxWords      = 20
)

// span is an inclusive count range.
type span struct {
	lo, hi int
}

type loremConfig struct {
	dictionary []string
	paragraphs span
	sentences  span
	words      span
}

// newLoremConfig starts from the defaults and applies opts in order; the
// last option touching a field wins.
func newLoremConfig(opts ...LoremOption) loremConfig {
	cfg := loremConfig{
		dictionary: slices.Clone(Dictionary),
		paragraphs: span{lo: defaultMinParagraphs, hi: defaultMaxParagraphs},
		sentences:  span{lo: defaultMinSentences, hi: defaultMaxSentences},
		words:      span{lo: defaultMinWords, hi: defaultMaxWords},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
