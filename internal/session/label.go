// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"fmt"
	"strings"

	"github.com/pdiddy/typestream/pkg/types"
)

// ModeLabel renders the mode the way the results screen shows it:
// "time 30", "word 50", or "quote short". Quotes picked by id or from the
// "all" bucket are labelled by the length category of quoteChars.
func ModeLabel(mode types.Mode, quoteChars int) string {
	switch m := mode.(type) {
	case types.TimeMode:
		return fmt.Sprintf("time %d", m.Seconds)
	case types.WordsMode:
		return fmt.Sprintf("word %d", m.Target)
	case types.QuoteMode:
		actual := types.CategoryForLength(quoteChars)
		if c, ok := m.Selector.(types.QuoteByCategory); ok && c.Length != types.QuoteAll {
			actual = c.Length
		}
		return "quote " + actual.String()
	}
	return ""
}

// TestType joins the mode label, corpus name, and enabled options into the
// one-line test description, e.g. "time 30 english punctuation number".
func TestType(mode types.Mode, quoteChars int, corpus string, punctuation, numbers bool) string {
	parts := []string{ModeLabel(mode, quoteChars), corpus}
	if punctuation {
		parts = append(parts, "punctuation")
	}
	if numbers {
		parts = append(parts, "number")
	}
	return strings.Join(parts, " ")
}

// Label returns the test-type string for this session.
func (s *Session) Label() string {
	rules := s.gen.Rules()
	return TestType(s.mode, s.quoteChars, s.gen.CorpusName(), rules.UsePunctuation, rules.UseNumbers)
}

// FormatTimer renders seconds as "45" below a minute and "m:ss" above.
func FormatTimer(seconds int) string {
	if seconds >= 60 {
		return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
	}
	return fmt.Sprintf("%d", seconds)
}
