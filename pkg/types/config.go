// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds settings for fetching corpus files over HTTP.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with corpus requests.
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// MaxRetries bounds retries on HTTP 429 (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// HistoryConfig holds settings for the session history store.
type HistoryConfig struct {
	// Enabled controls whether generate runs are recorded.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Dir is the directory containing history.db.
	Dir string `json:"dir" yaml:"dir"`
}

// Config groups the settings for one typing session.
type Config struct {
	// WordsFile is a path or http(s) URL to a word list.
	WordsFile string `json:"words_file" yaml:"words_file"`

	// QuotesFile is a path or http(s) URL to a quote corpus.
	QuotesFile string `json:"quotes_file" yaml:"quotes_file"`

	// Mode is the textual mode, parsed by ParseMode (e.g. "time 30").
	Mode string `json:"mode" yaml:"mode"`

	// Punctuation enables contractions, punctuation marks, and dashes.
	Punctuation bool `json:"punctuation" yaml:"punctuation"`

	// Numbers enables random numeral substitution.
	Numbers bool `json:"numbers" yaml:"numbers"`

	HTTP    HTTPConfig    `json:"http" yaml:"http"`
	History HistoryConfig `json:"history" yaml:"history"`
}
