// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generator

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/typestream/pkg/types"
)

var sampleWords = []string{
	"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
	"it", "is", "are", "you", "we", "they", "could", "would",
}

func TestGenerateTimeBatch(t *testing.T) {
	src := NewTextSource(types.WordData{Words: sampleWords})
	stream := GenerateTimeBatch(src, PunctuationRules{}, rand.New(rand.NewPCG(1, 2)))

	require.Len(t, stream, TimeBatchSize)
	for _, w := range stream {
		assert.Contains(t, sampleWords, w)
	}
	for i := 1; i < len(stream); i++ {
		assert.NotEqual(t, stream[i-1], stream[i], "immediate repeat at %d", i)
	}
}

func TestGenerateCountBatch(t *testing.T) {
	src := NewTextSource(types.WordData{Words: sampleWords})
	tests := []struct {
		name      string
		target    int
		wantCount int
	}{
		{"smaller than corpus", 5, 5},
		{"larger than corpus", 40, 40},
		{"large target built in one batch", 500, 500},
		{"zero", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream, n := GenerateCountBatch(src, PunctuationRules{}, tt.target, rand.New(rand.NewPCG(3, 4)))
			assert.Equal(t, tt.wantCount, n)
			assert.Len(t, stream, tt.wantCount)
		})
	}
}

func TestGenerateCountBatchDashesNotCounted(t *testing.T) {
	src := NewTextSource(types.WordData{Words: sampleWords})
	rules := PunctuationRules{UsePunctuation: true}
	r := rand.New(rand.NewPCG(9, 10))

	for range 20 {
		stream, n := GenerateCountBatch(src, rules, 60, r)
		assert.Equal(t, 60, n)
		assert.Equal(t, 60, CountWords(stream))
		assert.NotEqual(t, Dash, stream[0])
		assert.NotEqual(t, Dash, stream[len(stream)-1])
	}
}

func TestGenerateSmartWord(t *testing.T) {
	src := NewTextSource(types.WordData{Words: sampleWords})
	rules := PunctuationRules{UsePunctuation: true}

	// Dash trial fires.
	r := &scriptedRand{floats: []float64{0.99, 0.99, 0.1}, ints: []int{3, 0}}
	assert.Equal(t, []string{"-", "fox"}, GenerateSmartWord(src, rules, r))

	// Dash trial fails.
	r = &scriptedRand{ints: []int{3}}
	assert.Equal(t, []string{"fox"}, GenerateSmartWord(src, rules, r))
}

func TestGenerateNextWordAvoidsRepeat(t *testing.T) {
	src := NewTextSource(types.WordData{Words: []string{"fox", "dog"}})
	r := &scriptedRand{ints: []int{0, 0, 1}}
	got := GenerateNextWord(src, PunctuationRules{}, []string{"The", "Fox,"}, r)
	assert.Equal(t, []string{"dog"}, got)
}

func TestGenerateNextWordGivesUpOnSingleWordCorpus(t *testing.T) {
	src := NewTextSource(types.WordData{Words: []string{"fox"}})
	got := GenerateNextWord(src, PunctuationRules{}, []string{"fox"}, rand.New(rand.NewPCG(1, 1)))
	assert.Equal(t, []string{"fox"}, got)
}

func TestLastWord(t *testing.T) {
	assert.Equal(t, "fox", lastWord([]string{"the", "(Fox.)", "-"}))
	assert.Equal(t, "", lastWord([]string{"-"}))
	assert.Equal(t, "", lastWord(nil))
}
