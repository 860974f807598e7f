// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/typestream/internal/generator"
	"github.com/pdiddy/typestream/internal/textutil"
	"github.com/pdiddy/typestream/pkg/types"
)

var corpus = types.WordData{
	Name:  "english",
	Words: []string{"the", "be", "of", "and", "a", "to", "in", "he", "have", "it", "that", "for"},
}

func quoteCorpus(n int) types.QuoteData {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("q%d", i)
	}
	text := strings.Join(words, " ")
	return types.QuoteData{
		Groups: [4]types.LengthRange{{0, 100}, {101, 300}, {301, 600}, {601, 9999}},
		Quotes: []types.QuoteEntry{{ID: 1, Text: text, Source: "Source", Length: len(text)}},
	}
}

func TestWordsSessionRunsToTarget(t *testing.T) {
	gen := generator.New(corpus, false, false, generator.WithSeed(1))
	s := New(gen, types.WordsMode{Target: 10}, types.QuoteData{})
	s.Start()

	require.Len(t, s.Words(), 10)
	assert.Equal(t, 10, s.GeneratedCount())

	for !s.Done() {
		s.Advance()
		require.LessOrEqual(t, s.Typed(), 10)
	}
	assert.Equal(t, 10, s.Typed())
	assert.Len(t, s.Words(), 10)
	_, ok := s.Current()
	assert.False(t, ok)
}

func TestWordsSessionLargeTarget(t *testing.T) {
	gen := generator.New(corpus, false, true, generator.WithSeed(2))
	s := New(gen, types.WordsMode{Target: 120}, types.QuoteData{})
	s.Start()

	for !s.Done() {
		s.Advance()
	}
	assert.Equal(t, 120, s.GeneratedCount())
	assert.Equal(t, 120, generator.CountWords(s.Words()))
	last := s.Words()[len(s.Words())-1]
	assert.True(t, textutil.EndsWithTerminator(last), "last word %q does not end a sentence", last)
}

func TestQuoteSessionDrainsPool(t *testing.T) {
	gen := generator.New(corpus, false, true, generator.WithSeed(3))
	s := New(gen, types.QuoteMode{Selector: types.QuoteByID{ID: 1}}, quoteCorpus(130))
	s.Start()

	assert.Len(t, s.Words(), generator.QuoteWindow)
	assert.Equal(t, 30, s.Pending())
	assert.Equal(t, 130, s.TotalQuoteWords())
	assert.Equal(t, "Source", s.QuoteSource())

	word, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "q0", word)

	for !s.Done() {
		s.Advance()
	}
	assert.Equal(t, 0, s.Pending())
	assert.Len(t, s.Words(), 130)
	assert.Equal(t, "q129", s.Words()[129])
}

func TestQuoteLength(t *testing.T) {
	gen := generator.New(corpus, false, false)
	data := types.QuoteData{
		Groups: [4]types.LengthRange{{0, 100}, {101, 300}, {301, 600}, {601, 9999}},
		Quotes: []types.QuoteEntry{{ID: 4, Text: "to be or not", Source: "Bard", Length: 12}},
	}
	s := New(gen, types.QuoteMode{Selector: types.QuoteByID{ID: 4}}, data)
	s.Start()
	assert.Equal(t, 12, s.QuoteLength())
	assert.Equal(t, "quote short english", s.Label())

	long := New(gen, types.QuoteMode{Selector: types.QuoteByID{ID: 1}}, quoteCorpus(130))
	long.Start()
	assert.Equal(t, quoteCorpus(130).Quotes[0].Length, long.QuoteLength())
}

func TestQuoteLengthUsesRecordedLength(t *testing.T) {
	gen := generator.New(corpus, false, false)
	// Collapsing the double space would put the quote at 100 characters,
	// one short of the medium bucket.
	text := strings.Repeat("x", 49) + "  " + strings.Repeat("y", 50)
	require.Len(t, text, 101)
	data := types.QuoteData{
		Groups: [4]types.LengthRange{{0, 100}, {101, 300}, {301, 600}, {601, 9999}},
		Quotes: []types.QuoteEntry{{ID: 9, Text: text, Source: "Spacer", Length: 101}},
	}

	for _, sel := range []types.QuoteSelector{
		types.QuoteByID{ID: 9},
		types.QuoteByCategory{Length: types.QuoteAll},
	} {
		s := New(gen, types.QuoteMode{Selector: sel}, data)
		s.Start()
		require.Len(t, s.Words(), 2)
		assert.Equal(t, 101, s.QuoteLength())
		assert.Equal(t, "quote medium english", s.Label())
	}
}

func TestQuoteLengthFallback(t *testing.T) {
	gen := generator.New(corpus, false, false)
	s := New(gen, types.QuoteMode{Selector: types.QuoteByID{ID: 404}}, quoteCorpus(5))
	s.Start()
	assert.Equal(t, len("No Quote Found"), s.QuoteLength())
	assert.Equal(t, "quote short english", s.Label())
}

func TestTimeSessionKeepsGoing(t *testing.T) {
	gen := generator.New(corpus, true, true, generator.WithSeed(4))
	s := New(gen, types.TimeMode{Seconds: 30}, types.QuoteData{})
	s.Start()
	start := len(s.Words())

	for i := 0; i < 200; i++ {
		next := s.Advance()
		require.NotEmpty(t, next)
	}
	assert.False(t, s.Done())
	assert.GreaterOrEqual(t, len(s.Words()), start+200)
}

func TestModeLabel(t *testing.T) {
	tests := []struct {
		name  string
		mode  types.Mode
		chars int
		want  string
	}{
		{"time", types.TimeMode{Seconds: 30}, 0, "time 30"},
		{"words", types.WordsMode{Target: 50}, 0, "word 50"},
		{"quote category", types.QuoteMode{Selector: types.QuoteByCategory{Length: types.QuoteLong}}, 50, "quote long"},
		{"quote all uses actual length", types.QuoteMode{Selector: types.QuoteByCategory{Length: types.QuoteAll}}, 250, "quote medium"},
		{"quote id short", types.QuoteMode{Selector: types.QuoteByID{ID: 3}}, 100, "quote short"},
		{"quote id very long", types.QuoteMode{Selector: types.QuoteByID{ID: 3}}, 601, "quote very long"},
		{"nil", nil, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ModeLabel(tt.mode, tt.chars))
		})
	}
}

func TestTestType(t *testing.T) {
	assert.Equal(t, "time 30 english punctuation number",
		TestType(types.TimeMode{Seconds: 30}, 0, "english", true, true))
	assert.Equal(t, "word 25 english number",
		TestType(types.WordsMode{Target: 25}, 0, "english", false, true))
	assert.Equal(t, "time 15 english",
		TestType(types.TimeMode{Seconds: 15}, 0, "english", false, false))
}

func TestFormatTimer(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0"},
		{45, "45"},
		{59, "59"},
		{60, "1:00"},
		{65, "1:05"},
		{600, "10:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTimer(tt.seconds))
	}
}
