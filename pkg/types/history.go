// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HistoryEntry records one generated session. Only metadata is kept; the
// generated words themselves are never stored.
type HistoryEntry struct {
	// ID is a random UUID assigned when the entry is stored.
	ID string `json:"id" yaml:"id"`

	// CreatedAt is when the session was generated.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// Mode is the mode label (e.g. "time 30", "quote short").
	Mode string `json:"mode" yaml:"mode"`

	// TestType is the full test description including corpus and options.
	TestType string `json:"test_type" yaml:"test_type"`

	// Words is the number of tokens in the stream when the session ended.
	Words int `json:"words" yaml:"words"`

	// QuoteSource attributes the quote in quote mode.
	QuoteSource string `json:"quote_source,omitempty" yaml:"quote_source,omitempty"`
}
