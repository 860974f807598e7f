// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generator

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/typestream/internal/textutil"
)

const (
	numberChance      = 0.15
	contractionChance = 0.40
	markChance        = 0.30
	dashChance        = 0.30

	// maxNumber is the largest numeral substituted for a word.
	maxNumber = 9999
)

// contractions maps a lowercase base word to its candidate contracted forms.
var contractions = map[string][]string{
	"are":    {"aren't"},
	"can":    {"can't"},
	"could":  {"couldn't"},
	"did":    {"didn't"},
	"does":   {"doesn't"},
	"do":     {"don't"},
	"had":    {"hadn't"},
	"has":    {"hasn't"},
	"have":   {"haven't"},
	"is":     {"isn't"},
	"it":     {"it's", "it'll"},
	"i":      {"i'm", "i'll", "i've", "i'd"},
	"you":    {"you'll", "you're", "you've", "you'd"},
	"that":   {"that's", "that'll", "that'd"},
	"must":   {"mustn't", "must've"},
	"there":  {"there's", "there'll", "there'd"},
	"he":     {"he's", "he'll", "he'd"},
	"she":    {"she's", "she'll", "she'd"},
	"we":     {"we're", "we'll", "we'd"},
	"they":   {"they're", "they'll", "they'd"},
	"should": {"shouldn't", "should've"},
	"was":    {"wasn't"},
	"were":   {"weren't"},
	"will":   {"won't"},
	"would":  {"wouldn't", "would've"},
	"going":  {"goin'"},
}

// PunctuationRules transforms individual words. It carries no state besides
// its two switches; randomness comes from the caller.
type PunctuationRules struct {
	UseNumbers     bool
	UsePunctuation bool
}

// Apply transforms one word. With numbers enabled a word may be replaced by
// a numeral in [0, 9999], which skips every other rule. With punctuation
// enabled the word may be contracted and then receive one mark: a trailing
// comma, period, or exclamation mark, or wrapping double quotes, single
// quotes, or parentheses.
func (p PunctuationRules) Apply(word string, r Rand) string {
	if p.UseNumbers && chance(r, numberChance) {
		return strconv.Itoa(r.IntN(maxNumber + 1))
	}
	if !p.UsePunctuation {
		return word
	}

	if chance(r, contractionChance) {
		word = contract(word, r)
	}

	if chance(r, markChance) {
		switch bucket := r.IntN(100); {
		case bucket < 40:
			word += ","
		case bucket < 70:
			word += "."
		case bucket < 75:
			word += "!"
		case bucket < 80:
			// Unused bucket, mirrors the dash range.
		case bucket < 90:
			word = `"` + word + `"`
		case bucket < 95:
			word = "'" + word + "'"
		default:
			word = "(" + word + ")"
		}
	}
	return word
}

// ShouldInsertDash reports whether a literal "-" token should be spliced in
// before the next word. It fires on roughly 6% of calls when punctuation is
// enabled.
func (p PunctuationRules) ShouldInsertDash(r Rand) bool {
	return p.UsePunctuation && chance(r, dashChance) && 75+r.IntN(5) == 75
}

// contract swaps word for one of its contracted forms, keeping the casing
// of the original. Words without an entry are returned unchanged.
func contract(word string, r Rand) string {
	forms, ok := contractions[strings.ToLower(word)]
	if !ok || len(forms) == 0 {
		return word
	}
	return matchCasing(word, forms[r.IntN(len(forms))])
}

func matchCasing(original, replacement string) string {
	allUpper := true
	for _, c := range original {
		if unicode.IsLetter(c) && !unicode.IsUpper(c) {
			allUpper = false
			break
		}
	}
	if allUpper {
		return strings.ToUpper(replacement)
	}

	if first, _ := utf8.DecodeRuneInString(original); unicode.IsUpper(first) {
		return textutil.UpperFirst(replacement)
	}
	return replacement
}
