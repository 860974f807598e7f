// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generator produces the word and quote content stream for a typing
// session. WordGenerator composes a TextSource, the PunctuationRules, the
// word and quote controllers, and the stream formatting pass.
//
// The package holds no session state. Every call builds its own random
// source and threads it through all decisions made in that call; the stream,
// quote pool, and produced-word count live with the caller.
package generator

import (
	"strings"

	"github.com/pdiddy/typestream/internal/textutil"
	"github.com/pdiddy/typestream/pkg/types"
)

// fallbackWord is returned when the corpus is empty.
const fallbackWord = "word"

// Rand is the subset of *rand.Rand the generator draws from. Tests
// substitute scripted implementations to force individual trials.
type Rand interface {
	Float64() float64
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// chance runs a Bernoulli trial with success probability p.
func chance(r Rand, p float64) bool {
	return r.Float64() < p
}

// TextSource gives read-only, uniformly sampled access to a word corpus and
// resolves quotes from a quote corpus.
type TextSource struct {
	data types.WordData
}

// NewTextSource wraps a parsed word corpus.
func NewTextSource(data types.WordData) *TextSource {
	return &TextSource{data: data}
}

// Name returns the corpus display label.
func (s *TextSource) Name() string {
	return s.data.Name
}

// RandomWord returns a uniformly sampled corpus word, or "word" when the
// corpus is empty.
func (s *TextSource) RandomWord(r Rand) string {
	if len(s.data.Words) == 0 {
		return fallbackWord
	}
	return s.data.Words[r.IntN(len(s.data.Words))]
}

// UniqueBatch shuffles a copy of the corpus and returns its first count
// words. When count exceeds the corpus size the whole corpus is returned,
// so callers must tolerate a shorter result.
func (s *TextSource) UniqueBatch(count int, r Rand) []string {
	if count <= 0 {
		return nil
	}
	deck := make([]string, len(s.data.Words))
	copy(deck, s.data.Words)
	r.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	if count < len(deck) {
		deck = deck[:count]
	}
	return deck
}

// QuoteText resolves a quote by id or by sampling its length bucket. It
// returns the quote split into words after typography cleanup, together
// with the quote's source and its recorded character length. ok is false
// when the id is unknown or the bucket is empty.
func (s *TextSource) QuoteText(sel types.QuoteSelector, data types.QuoteData, r Rand) (words []string, source string, length int, ok bool) {
	var q types.QuoteEntry

	switch sel := sel.(type) {
	case types.QuoteByID:
		q, ok = data.FindQuote(sel.ID)
	case types.QuoteByCategory:
		bounds := data.Range(sel.Length)
		var valid []types.QuoteEntry
		for _, entry := range data.Quotes {
			if bounds.Contains(entry.Length) {
				valid = append(valid, entry)
			}
		}
		if len(valid) > 0 {
			q, ok = valid[r.IntN(len(valid))], true
		}
	}
	if !ok {
		return nil, "", 0, false
	}

	return strings.Fields(textutil.CleanTypography(q.Text)), q.Source, q.Length, true
}
