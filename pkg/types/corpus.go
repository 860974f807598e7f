// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data model shared by the generator, the corpus
// loaders, the session driver, and the CLI.
package types

// WordData is a flat word corpus and its display label.
type WordData struct {
	// Name labels the corpus in test-type strings (e.g. "english").
	Name string `json:"name" yaml:"name"`

	// Words is the sampling pool for time and word-count modes.
	Words []string `json:"words" yaml:"words"`
}

// QuoteLength is a quote length category. The first four values index
// QuoteData.Groups.
type QuoteLength int

const (
	QuoteShort QuoteLength = iota
	QuoteMedium
	QuoteLong
	QuoteVeryLong
	QuoteAll
)

var quoteLengthNames = [...]string{"short", "medium", "long", "very long", "all"}

// String returns the lowercase display name of the category.
func (l QuoteLength) String() string {
	if l < QuoteShort || l > QuoteAll {
		return "unknown"
	}
	return quoteLengthNames[l]
}

// ParseQuoteLength maps "short", "medium", "long", "very long"/"verylong"/"very-long"
// and "all" onto a QuoteLength.
func ParseQuoteLength(s string) (QuoteLength, bool) {
	switch s {
	case "short":
		return QuoteShort, true
	case "medium":
		return QuoteMedium, true
	case "long":
		return QuoteLong, true
	case "very long", "verylong", "very-long", "very_long":
		return QuoteVeryLong, true
	case "all":
		return QuoteAll, true
	}
	return 0, false
}

// CategoryForLength classifies a quote by its character count using the
// fixed display thresholds 100, 300, and 600.
func CategoryForLength(chars int) QuoteLength {
	switch {
	case chars <= 100:
		return QuoteShort
	case chars <= 300:
		return QuoteMedium
	case chars <= 600:
		return QuoteLong
	default:
		return QuoteVeryLong
	}
}

// LengthRange is an inclusive [min, max] character-length bound.
type LengthRange [2]int

// Contains reports whether n falls inside the range.
func (r LengthRange) Contains(n int) bool {
	return n >= r[0] && n <= r[1]
}

// AllLengths is the unbounded range used by the "all" category.
var AllLengths = LengthRange{0, 9999}

// QuoteEntry is one quote in the corpus.
type QuoteEntry struct {
	// ID identifies the quote for id selectors.
	ID int `json:"id" yaml:"id"`

	// Text is the quote as authored.
	Text string `json:"text" yaml:"text"`

	// Source attributes the quote (book, film, speaker).
	Source string `json:"source" yaml:"source"`

	// Length is the character count of Text.
	Length int `json:"length" yaml:"length"`
}

// QuoteData is a quote corpus with its length buckets.
type QuoteData struct {
	// Quotes lists every quote in corpus order.
	Quotes []QuoteEntry `json:"quotes" yaml:"quotes"`

	// Groups holds the short, medium, long, and very long bounds in that order.
	Groups [4]LengthRange `json:"groups" yaml:"groups"`
}

// Range returns the length bounds for a category. QuoteAll yields AllLengths.
func (d QuoteData) Range(l QuoteLength) LengthRange {
	if l >= QuoteShort && l <= QuoteVeryLong {
		return d.Groups[l]
	}
	return AllLengths
}

// FindQuote returns the quote with the given id.
func (d QuoteData) FindQuote(id int) (QuoteEntry, bool) {
	for _, q := range d.Quotes {
		if q.ID == id {
			return q, true
		}
	}
	return QuoteEntry{}, false
}
