// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generator

import (
	"strings"
	"unicode"
)

const (
	// TimeBatchSize is the number of words produced up front for timed
	// sessions, enough to fill a typical three-line display with room to
	// spare. Further words are appended one at a time as the typist
	// advances.
	TimeBatchSize = 50

	// repeatRetries bounds the redraws spent avoiding a word equal to the
	// one before it.
	repeatRetries = 3

	// Dash is the literal token spliced between words.
	Dash = "-"
)

// GenerateTimeBatch produces the opening batch for a timed session.
func GenerateTimeBatch(src *TextSource, rules PunctuationRules, r Rand) []string {
	stream, _ := buildBatch(src, rules, TimeBatchSize, r)
	return stream
}

// GenerateCountBatch produces the whole target for a word-count session up
// front, so the formatting pass sees the real end of the test, and reports
// how many words it produced. Dash tokens are not counted.
func GenerateCountBatch(src *TextSource, rules PunctuationRules, target int, r Rand) ([]string, int) {
	return buildBatch(src, rules, target, r)
}

// GenerateSmartWord produces one unit for a timed session: a word,
// occasionally preceded by a dash token.
func GenerateSmartWord(src *TextSource, rules PunctuationRules, r Rand) []string {
	return withDash(rules, rules.Apply(src.RandomWord(r), r), r)
}

// GenerateNextWord produces one unit for a word-count session, redrawing a
// few times to avoid repeating the last word of existing.
func GenerateNextWord(src *TextSource, rules PunctuationRules, existing []string, r Rand) []string {
	prev := lastWord(existing)
	w := src.RandomWord(r)
	for i := 0; i < repeatRetries && prev != "" && bare(w) == prev; i++ {
		w = src.RandomWord(r)
	}
	return withDash(rules, rules.Apply(w, r), r)
}

// buildBatch draws n words, preferring distinct words and topping up with
// non-repeating random draws when the corpus is smaller than n. It returns
// the stream and the number of real words in it.
func buildBatch(src *TextSource, rules PunctuationRules, n int, r Rand) ([]string, int) {
	if n <= 0 {
		return []string{}, 0
	}

	words := src.UniqueBatch(n, r)
	for len(words) < n {
		w := src.RandomWord(r)
		if len(words) > 0 {
			prev := words[len(words)-1]
			for i := 0; i < repeatRetries && w == prev; i++ {
				w = src.RandomWord(r)
			}
		}
		words = append(words, w)
	}

	stream := make([]string, 0, n+n/10)
	for i, w := range words {
		if i > 0 && rules.ShouldInsertDash(r) {
			stream = append(stream, Dash)
		}
		stream = append(stream, rules.Apply(w, r))
	}
	return stream, len(words)
}

func withDash(rules PunctuationRules, word string, r Rand) []string {
	if rules.ShouldInsertDash(r) {
		return []string{Dash, word}
	}
	return []string{word}
}

// lastWord returns the bare form of the last non-dash token in stream.
func lastWord(stream []string) string {
	for i := len(stream) - 1; i >= 0; i-- {
		if stream[i] != Dash {
			return bare(stream[i])
		}
	}
	return ""
}

// bare lowercases w and strips surrounding punctuation so "(The," and
// "the" compare equal.
func bare(w string) string {
	return strings.ToLower(strings.TrimFunc(w, func(c rune) bool {
		return !unicode.IsLetter(c) && !unicode.IsDigit(c)
	}))
}

// CountWords returns the number of non-dash tokens in units.
func CountWords(units []string) int {
	n := 0
	for _, u := range units {
		if u != Dash {
			n++
		}
	}
	return n
}
