// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generator

import (
	"math/rand/v2"

	"github.com/pdiddy/typestream/pkg/types"
)

// WordGenerator dispatches on the session mode to the word and quote
// controllers. It keeps no stream state between calls.
type WordGenerator struct {
	source  *TextSource
	rules   PunctuationRules
	newRand func() Rand
}

// Option configures a WordGenerator.
type Option func(*WordGenerator)

// WithSeed makes the generator deterministic. Each call still gets its own
// random source, drawn in sequence from a generator seeded with seed, so a
// WordGenerator built WithSeed must not be shared across goroutines.
func WithSeed(seed uint64) Option {
	return func(g *WordGenerator) {
		base := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		g.newRand = func() Rand {
			return rand.New(rand.NewPCG(base.Uint64(), base.Uint64()))
		}
	}
}

// WithRandSource replaces the per-call random source factory.
func WithRandSource(fn func() Rand) Option {
	return func(g *WordGenerator) {
		g.newRand = fn
	}
}

// New returns a generator over the given corpus.
func New(data types.WordData, useNumbers, usePunctuation bool, opts ...Option) *WordGenerator {
	g := &WordGenerator{
		source: NewTextSource(data),
		rules: PunctuationRules{
			UseNumbers:     useNumbers,
			UsePunctuation: usePunctuation,
		},
		newRand: func() Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Rules returns the punctuation switches the generator was built with.
func (g *WordGenerator) Rules() PunctuationRules {
	return g.rules
}

// CorpusName returns the display label of the word corpus.
func (g *WordGenerator) CorpusName() string {
	return g.source.Name()
}

// GenerateInitialWords produces the opening stream for mode. Batches for
// time and word-count modes are finalized when punctuation is enabled;
// quote text is left as authored.
func (g *WordGenerator) GenerateInitialWords(mode types.Mode, quotes types.QuoteData) types.GeneratedWords {
	r := g.newRand()
	var out types.GeneratedWords

	switch m := mode.(type) {
	case types.TimeMode:
		out.WordStream = GenerateTimeBatch(g.source, g.rules, r)
	case types.WordsMode:
		out.WordStream, out.GeneratedCount = GenerateCountBatch(g.source, g.rules, m.Target, r)
	case types.QuoteMode:
		res := GenerateQuote(g.source, m.Selector, quotes, r)
		out.WordStream = res.WordStream
		out.QuotePool = res.QuotePool
		out.TotalQuoteWords = res.TotalWords
		out.CurrentQuoteSource = res.Source
		out.QuoteLength = res.Length
		return out
	default:
		return out
	}

	if g.rules.UsePunctuation {
		out.WordStream = FinalizeStreamPunctuation(out.WordStream)
	}
	return out
}

// AddOneWord produces the next unit to append to existing. Timed sessions
// always yield a unit. Quote sessions pop the pool and report false once it
// is drained. Word-count sessions report false once generatedCount reaches
// the target.
func (g *WordGenerator) AddOneWord(mode types.Mode, existing []string, quotePool *[]string, generatedCount int) ([]string, bool) {
	r := g.newRand()

	switch m := mode.(type) {
	case types.TimeMode:
		words := GenerateSmartWord(g.source, g.rules, r)
		ApplyContextualCapitalization(words, existing, g.rules.UsePunctuation)
		return words, true
	case types.QuoteMode:
		return NextQuoteWord(quotePool)
	case types.WordsMode:
		if generatedCount >= m.Target {
			return nil, false
		}
		words := GenerateNextWord(g.source, g.rules, existing, r)
		ApplyContextualCapitalization(words, existing, g.rules.UsePunctuation)
		return words, true
	}
	return nil, false
}
