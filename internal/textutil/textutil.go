// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textutil holds the small string helpers shared by the generator:
// typography cleanup, capitalization, and sentence-terminator checks.
package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// typography maps typographic symbols to the ASCII a keyboard produces.
var typography = strings.NewReplacer(
	"\u2018", "'", // left single quote
	"\u2019", "'", // right single quote
	"\u201a", "'",
	"\u201b", "'",
	"\u2032", "'",
	"\u201c", `"`, // left double quote
	"\u201d", `"`, // right double quote
	"\u201e", `"`,
	"\u201f", `"`,
	"\u2033", `"`,
	"\u00ab", `"`,
	"\u00bb", `"`,
	"\u2010", "-",
	"\u2011", "-",
	"\u2012", "-",
	"\u2013", "-", // en dash
	"\u2014", "-", // em dash
	"\u2015", "-",
	"\u2212", "-",
	"\u2026", "...",
	"\u00a0", " ",
	"\u2009", " ",
	"\u202f", " ",
)

// CleanTypography replaces curly quotes, dashes, ellipses, and non-breaking
// spaces with their plain ASCII equivalents.
func CleanTypography(s string) string {
	return typography.Replace(s)
}

// IsTerminator reports whether r ends a sentence.
func IsTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// EndsWithTerminator reports whether word ends in '.', '!' or '?'.
func EndsWithTerminator(word string) bool {
	r, size := utf8.DecodeLastRuneInString(word)
	return size > 0 && IsTerminator(r)
}

// Capitalize uppercases the first letter of word. Leading non-letters such
// as an opening quote or parenthesis are skipped so `"hello"` becomes
// `"Hello"`. Words without letters are returned unchanged.
func Capitalize(word string) string {
	for i, r := range word {
		if !unicode.IsLetter(r) {
			continue
		}
		if unicode.IsUpper(r) {
			return word
		}
		return word[:i] + string(unicode.ToUpper(r)) + word[i+utf8.RuneLen(r):]
	}
	return word
}

// UpperFirst uppercases only the first rune of s.
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
