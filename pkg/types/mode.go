// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode selects which controller drives generation and when a session ends.
// The variant set is closed: TimeMode, WordsMode, and QuoteMode.
type Mode interface {
	isMode()
	String() string
}

// TimeMode is an open-ended session bounded only by the external timer.
type TimeMode struct {
	Seconds int
}

// WordsMode ends once Target words have been produced.
type WordsMode struct {
	Target int
}

// QuoteMode types a single quote chosen by Selector.
type QuoteMode struct {
	Selector QuoteSelector
}

func (TimeMode) isMode()  {}
func (WordsMode) isMode() {}
func (QuoteMode) isMode() {}

func (m TimeMode) String() string  { return fmt.Sprintf("time %d", m.Seconds) }
func (m WordsMode) String() string { return fmt.Sprintf("words %d", m.Target) }
func (m QuoteMode) String() string {
	if m.Selector == nil {
		return "quote"
	}
	return "quote " + m.Selector.String()
}

// QuoteSelector picks a quote either by id or by length category.
type QuoteSelector interface {
	isQuoteSelector()
	String() string
}

// QuoteByID selects the quote with an exact id.
type QuoteByID struct {
	ID int
}

// QuoteByCategory samples uniformly among quotes in a length bucket.
type QuoteByCategory struct {
	Length QuoteLength
}

func (QuoteByID) isQuoteSelector()       {}
func (QuoteByCategory) isQuoteSelector() {}

func (s QuoteByID) String() string       { return fmt.Sprintf("id %d", s.ID) }
func (s QuoteByCategory) String() string { return s.Length.String() }

// ParseMode parses the textual form used in config files and flags:
//
//	time 30 | words 50 | word 50 | quote short | quote very long | quote id 12
func ParseMode(s string) (Mode, error) {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) < 2 {
		return nil, fmt.Errorf("parsing mode %q: expected \"<kind> <value>\"", s)
	}

	switch fields[0] {
	case "time":
		n, err := parsePositive(fields[1])
		if err != nil {
			return nil, fmt.Errorf("parsing mode %q: %w", s, err)
		}
		return TimeMode{Seconds: n}, nil
	case "words", "word":
		n, err := parsePositive(fields[1])
		if err != nil {
			return nil, fmt.Errorf("parsing mode %q: %w", s, err)
		}
		return WordsMode{Target: n}, nil
	case "quote":
		if fields[1] == "id" {
			if len(fields) != 3 {
				return nil, fmt.Errorf("parsing mode %q: quote id requires a number", s)
			}
			id, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("parsing mode %q: invalid quote id: %w", s, err)
			}
			return QuoteMode{Selector: QuoteByID{ID: id}}, nil
		}
		l, ok := ParseQuoteLength(strings.Join(fields[1:], " "))
		if !ok {
			return nil, fmt.Errorf("parsing mode %q: unknown quote length %q", s, strings.Join(fields[1:], " "))
		}
		return QuoteMode{Selector: QuoteByCategory{Length: l}}, nil
	}
	return nil, fmt.Errorf("parsing mode %q: unknown kind %q", s, fields[0])
}

func parsePositive(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("value must be positive, got %d", n)
	}
	return n, nil
}

// GeneratedWords is the result of an initial generation call. The caller
// owns it and threads WordStream, QuotePool, and GeneratedCount back into
// each incremental append.
type GeneratedWords struct {
	// WordStream is the content shown to the typist.
	WordStream []string

	// QuotePool holds quote words not yet surfaced, in reverse order so the
	// next word is always the last element.
	QuotePool []string

	// TotalQuoteWords is the word count of the whole selected quote.
	TotalQuoteWords int

	// CurrentQuoteSource attributes the selected quote; empty outside quote mode.
	CurrentQuoteSource string

	// GeneratedCount is the number of words produced toward a WordsMode target.
	GeneratedCount int

	// QuoteLength is the character length recorded for the selected quote.
	// It drives the length category shown for id and "all" selections.
	QuoteLength int
}
