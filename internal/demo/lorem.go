// SPDX-License-Identifier: MIT
// Package: sx/internal/demo
//
// lorem.go - nested pseudo-Latin text.

package demo

import (
	"strings"

	"github.com/katalvlaran/sx/gen"
	"github.com/katalvlaran/sx/rnd"
)

// Text is paragraphs of sentences of words.
type Text [][][]string

// LoremText returns a generator of Text. Words within a sentence never
// repeat their immediate predecessor, so a one-word dictionary can only
// produce one-word sentences.
func LoremText(opts ...LoremOption) gen.Generator[Text] {
	cfg := newLoremConfig(opts...)

	words := gen.OneOf(cfg.dictionary...)
	sentence := gen.TakeNoRepeatDrawn(gen.IntRange(cfg.words.lo, cfg.words.hi), words)
	paragraph := gen.TakeDrawn(gen.IntRange(cfg.sentences.lo, cfg.sentences.hi), sentence)
	text := gen.TakeDrawn(gen.IntRange(cfg.paragraphs.lo, cfg.paragraphs.hi), paragraph)

	return gen.Map(text, func(ps [][][]string) Text { return Text(ps) })
}

// Lorem samples LoremText(opts...) and renders it.
func Lorem(s *rnd.Stream, budget int, opts ...LoremOption) (string, error) {
	t, err := gen.SampleBudget(s, LoremText(opts...), budget)
	if err != nil {
		return "", err
	}

	return t.String(), nil
}

// String renders t: the first word of a sentence keeps its case, the rest
// are lowercased; sentences end with a period and paragraphs are separated
// by a blank line.
func (t Text) String() string {
	var b strings.Builder
	for p, para := range t {
		if p > 0 {
			b.WriteString("\n\n")
		}
		for si, sentence := range para {
			if si > 0 {
				b.WriteByte(' ')
			}
			writeSentence(&b, sentence)
		}
	}

	return b.String()
}

func writeSentence(b *strings.Builder, words []string) {
	for i, w := range words {
		if i > 0 {
			b.WriteByte(' ')
			w = strings.ToLower(w)
		}
		b.WriteString(w)
	}
	b.WriteByte('.')
}
