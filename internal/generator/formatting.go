// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generator

import (
	"slices"
	"strings"

	"github.com/pdiddy/typestream/internal/textutil"
)

// FinalizeStreamPunctuation normalizes a freshly produced batch: the first
// word and every word after a terminator are capitalized, and the last word
// is made to end the sentence. A trailing dash is dropped and a trailing
// comma becomes a period. The returned stream holds no empty strings.
func FinalizeStreamPunctuation(stream []string) []string {
	if len(stream) == 0 {
		return stream
	}

	stream[0] = textutil.Capitalize(stream[0])
	for i := 0; i < len(stream)-1; i++ {
		if textutil.EndsWithTerminator(stream[i]) {
			stream[i+1] = textutil.Capitalize(stream[i+1])
		}
	}

	last := stream[len(stream)-1]
	if last == Dash {
		last = ""
	}
	last = strings.TrimSuffix(last, ",")
	if last != "" && !textutil.EndsWithTerminator(last) {
		last += "."
	}
	stream[len(stream)-1] = last

	return slices.DeleteFunc(stream, func(s string) bool { return s == "" })
}

// ApplyContextualCapitalization capitalizes the first of newWords when the
// stream it is appended to ends a sentence. It does nothing when
// punctuation is disabled.
func ApplyContextualCapitalization(newWords, existing []string, usePunctuation bool) {
	if !usePunctuation || len(newWords) == 0 || len(existing) == 0 {
		return
	}
	if textutil.EndsWithTerminator(existing[len(existing)-1]) {
		newWords[0] = textutil.Capitalize(newWords[0])
	}
}
