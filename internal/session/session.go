// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session drives a typing session headlessly. It owns the stream,
// quote pool, and word count the generator hands back, and threads them
// into every append as the typist consumes words.
package session

import (
	"github.com/pdiddy/typestream/internal/generator"
	"github.com/pdiddy/typestream/pkg/types"
)

// Session holds the live content of one typing test.
type Session struct {
	gen    *generator.WordGenerator
	mode   types.Mode
	quotes types.QuoteData

	words       []string
	pool        []string
	generated   int
	totalQuote  int
	quoteSource string
	quoteChars  int
	cursor      int
	exhausted   bool
}

// New prepares a session. Call Start before reading content.
func New(gen *generator.WordGenerator, mode types.Mode, quotes types.QuoteData) *Session {
	return &Session{gen: gen, mode: mode, quotes: quotes}
}

// Start generates the opening stream, discarding any previous content.
func (s *Session) Start() {
	out := s.gen.GenerateInitialWords(s.mode, s.quotes)
	s.words = out.WordStream
	s.pool = out.QuotePool
	s.generated = out.GeneratedCount
	s.totalQuote = out.TotalQuoteWords
	s.quoteSource = out.CurrentQuoteSource
	s.quoteChars = out.QuoteLength
	s.cursor = 0
	s.exhausted = false
}

// Current returns the word the typist is on.
func (s *Session) Current() (string, bool) {
	if s.cursor >= len(s.words) {
		return "", false
	}
	return s.words[s.cursor], true
}

// Advance marks the current word as typed and appends the next unit from
// the generator. It returns the appended tokens, which are empty once the
// mode has no more content to offer.
func (s *Session) Advance() []string {
	if s.cursor < len(s.words) {
		s.cursor++
	}
	if s.exhausted {
		return nil
	}

	next, ok := s.gen.AddOneWord(s.mode, s.words, &s.pool, s.generated)
	if !ok {
		s.exhausted = true
		return nil
	}
	if _, words := s.mode.(types.WordsMode); words {
		s.generated += generator.CountWords(next)
	}
	s.words = append(s.words, next...)
	return next
}

// Done reports whether every word has been typed and no more will come.
func (s *Session) Done() bool {
	return s.exhausted && s.cursor >= len(s.words)
}

// Words returns the whole stream produced so far.
func (s *Session) Words() []string {
	return s.words
}

// Typed returns the number of tokens consumed.
func (s *Session) Typed() int {
	return s.cursor
}

// Pending returns the number of quote words still queued.
func (s *Session) Pending() int {
	return len(s.pool)
}

// GeneratedCount returns the words produced toward a word-count target.
func (s *Session) GeneratedCount() int {
	return s.generated
}

// TotalQuoteWords returns the word count of the selected quote.
func (s *Session) TotalQuoteWords() int {
	return s.totalQuote
}

// QuoteSource returns the attribution of the selected quote.
func (s *Session) QuoteSource() string {
	return s.quoteSource
}

// QuoteLength returns the character length recorded for the selected quote.
func (s *Session) QuoteLength() int {
	return s.quoteChars
}

// Mode returns the session mode.
func (s *Session) Mode() types.Mode {
	return s.mode
}
