// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generator

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/typestream/pkg/types"
)

func testQuotes() types.QuoteData {
	return types.QuoteData{
		Groups: [4]types.LengthRange{{0, 100}, {101, 300}, {301, 600}, {601, 9999}},
		Quotes: []types.QuoteEntry{
			{ID: 1, Text: "Short and sweet.", Source: "Anon", Length: 16},
			{ID: 2, Text: "It’s a “quoted” line—with dashes.", Source: "Typist", Length: 35},
			{ID: 3, Text: "medium", Source: "Middle", Length: 150},
		},
	}
}

func TestRandomWord(t *testing.T) {
	src := NewTextSource(types.WordData{Name: "test", Words: []string{"alpha", "beta", "gamma"}})
	r := rand.New(rand.NewPCG(1, 2))
	for range 50 {
		assert.Contains(t, []string{"alpha", "beta", "gamma"}, src.RandomWord(r))
	}
}

func TestRandomWordEmptyCorpus(t *testing.T) {
	src := NewTextSource(types.WordData{Name: "empty"})
	assert.Equal(t, "word", src.RandomWord(rand.New(rand.NewPCG(1, 2))))
}

func TestUniqueBatch(t *testing.T) {
	corpus := []string{"a", "b", "c", "d", "e", "f"}
	src := NewTextSource(types.WordData{Words: corpus})
	r := rand.New(rand.NewPCG(3, 4))

	batch := src.UniqueBatch(4, r)
	require.Len(t, batch, 4)
	seen := map[string]bool{}
	for _, w := range batch {
		assert.False(t, seen[w], "duplicate word %q", w)
		seen[w] = true
		assert.Contains(t, corpus, w)
	}

	all := src.UniqueBatch(10, r)
	assert.ElementsMatch(t, corpus, all)
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, corpus, "corpus must not be reordered")
	assert.Empty(t, src.UniqueBatch(0, r))
}

func TestQuoteText(t *testing.T) {
	src := NewTextSource(types.WordData{})
	data := testQuotes()

	tests := []struct {
		name       string
		sel        types.QuoteSelector
		wantOK     bool
		wantSource []string
	}{
		{name: "by id", sel: types.QuoteByID{ID: 1}, wantOK: true, wantSource: []string{"Anon"}},
		{name: "unknown id", sel: types.QuoteByID{ID: 99}},
		{name: "short bucket", sel: types.QuoteByCategory{Length: types.QuoteShort}, wantOK: true, wantSource: []string{"Anon", "Typist"}},
		{name: "medium bucket", sel: types.QuoteByCategory{Length: types.QuoteMedium}, wantOK: true, wantSource: []string{"Middle"}},
		{name: "empty bucket", sel: types.QuoteByCategory{Length: types.QuoteVeryLong}},
		{name: "all", sel: types.QuoteByCategory{Length: types.QuoteAll}, wantOK: true, wantSource: []string{"Anon", "Typist", "Middle"}},
		{name: "nil selector", sel: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words, source, _, ok := src.QuoteText(tt.sel, data, rand.New(rand.NewPCG(5, 6)))
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Nil(t, words)
				return
			}
			assert.NotEmpty(t, words)
			assert.Contains(t, tt.wantSource, source)
		})
	}
}

func TestQuoteTextCleansTypography(t *testing.T) {
	src := NewTextSource(types.WordData{})
	words, _, length, ok := src.QuoteText(types.QuoteByID{ID: 2}, testQuotes(), rand.New(rand.NewPCG(1, 1)))
	require.True(t, ok)
	assert.Equal(t, 35, length)
	assert.Equal(t, []string{"It's", "a", `"quoted"`, "line-with", "dashes."}, words)
}
