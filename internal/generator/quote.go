// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generator

import (
	"slices"
	"strings"

	"github.com/pdiddy/typestream/pkg/types"
)

// QuoteWindow is the number of quote words surfaced up front. The rest of a
// longer quote is queued in the quote pool.
const QuoteWindow = 100

const (
	fallbackQuoteText   = "No Quote Found"
	fallbackQuoteSource = "System"
)

// fallbackQuote is shown when no quote matches the selector.
var fallbackQuote = strings.Fields(fallbackQuoteText)

// QuoteResult is the outcome of selecting and windowing a quote.
type QuoteResult struct {
	WordStream []string
	// QuotePool holds the words past the window, reversed so that popping
	// from the end yields them in reading order.
	QuotePool  []string
	TotalWords int
	Source     string
	// Length is the character length recorded for the quote entry.
	Length int
}

// GenerateQuote resolves a quote and splits it into the visible window and
// the overflow pool. An unresolvable selector yields the fixed
// "No Quote Found" placeholder attributed to "System".
func GenerateQuote(src *TextSource, sel types.QuoteSelector, data types.QuoteData, r Rand) QuoteResult {
	words, source, length, ok := src.QuoteText(sel, data, r)
	if !ok {
		return QuoteResult{
			WordStream: slices.Clone(fallbackQuote),
			QuotePool:  []string{},
			TotalWords: len(fallbackQuote),
			Source:     fallbackQuoteSource,
			Length:     len(fallbackQuoteText),
		}
	}

	res := QuoteResult{
		WordStream: words,
		QuotePool:  []string{},
		TotalWords: len(words),
		Source:     source,
		Length:     length,
	}
	if len(words) > QuoteWindow {
		res.WordStream = words[:QuoteWindow:QuoteWindow]
		res.QuotePool = slices.Clone(words[QuoteWindow:])
		slices.Reverse(res.QuotePool)
	}
	return res
}

// NextQuoteWord pops the next overflow word from pool. It returns false
// once the pool is drained.
func NextQuoteWord(pool *[]string) ([]string, bool) {
	if pool == nil || len(*pool) == 0 {
		return nil, false
	}
	n := len(*pool)
	w := (*pool)[n-1]
	*pool = (*pool)[:n-1]
	return []string{w}, true
}
