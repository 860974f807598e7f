// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corpus loads word lists and quote collections from local files or
// http(s) URLs and turns them into the generator's input types.
//
// Word lists are JSON or YAML documents of the form {name, words}, or plain
// text with one word per line. Quote collections are JSON or YAML documents
// of the form {groups, quotes}.
package corpus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/typestream/internal/httputil"
	"github.com/pdiddy/typestream/pkg/types"
)

// ErrEmptyCorpus is returned when a word list holds no usable words.
var ErrEmptyCorpus = errors.New("corpus has no words")

// DefaultGroups are the length buckets used when a quote file omits them.
var DefaultGroups = [4]types.LengthRange{{0, 100}, {101, 300}, {301, 600}, {601, 9999}}

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "typestream/0.1"
)

// Format identifies how a corpus document is encoded.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
	FormatText
)

// Loader reads corpus documents. Progress lines go to the log writer.
type Loader struct {
	client     *http.Client
	userAgent  string
	maxRetries int
	log        io.Writer
}

// NewLoader builds a Loader from the HTTP settings. A nil log discards
// progress output.
func NewLoader(cfg types.HTTPConfig, log io.Writer) *Loader {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	if log == nil {
		log = io.Discard
	}
	return &Loader{
		client:     &http.Client{Timeout: timeout},
		userAgent:  ua,
		maxRetries: cfg.MaxRetries,
		log:        log,
	}
}

// LoadWords reads a word list from location.
func (l *Loader) LoadWords(ctx context.Context, location string) (types.WordData, error) {
	data, f, err := l.read(ctx, location)
	if err != nil {
		return types.WordData{}, err
	}

	wd, err := ParseWords(data, f, defaultName(location))
	if err != nil {
		return types.WordData{}, fmt.Errorf("parsing word list %s: %w", location, err)
	}
	fmt.Fprintf(l.log, "loaded corpus: %s (%d words)\n", wd.Name, len(wd.Words))
	return wd, nil
}

// LoadQuotes reads a quote collection from location.
func (l *Loader) LoadQuotes(ctx context.Context, location string) (types.QuoteData, error) {
	data, f, err := l.read(ctx, location)
	if err != nil {
		return types.QuoteData{}, err
	}

	qd, err := ParseQuotes(data, f)
	if err != nil {
		return types.QuoteData{}, fmt.Errorf("parsing quotes %s: %w", location, err)
	}
	fmt.Fprintf(l.log, "loaded quotes: %d from %s\n", len(qd.Quotes), location)
	return qd, nil
}

func (l *Loader) read(ctx context.Context, location string) ([]byte, Format, error) {
	if isURL(location) {
		u, err := url.Parse(location)
		if err != nil {
			return nil, 0, fmt.Errorf("parsing url %s: %w", location, err)
		}
		data, err := httputil.Get(ctx, l.client, location, l.userAgent, l.maxRetries, l.log)
		if err != nil {
			return nil, 0, err
		}
		return data, FormatFor(path.Ext(u.Path)), nil
	}

	data, err := os.ReadFile(location)
	if err != nil {
		return nil, 0, fmt.Errorf("reading %s: %w", location, err)
	}
	return data, FormatFor(filepath.Ext(location)), nil
}

// ParseWords decodes a word list. Blank entries are dropped and
// surrounding whitespace trimmed. fallbackName labels documents that carry
// no name of their own.
func ParseWords(data []byte, f Format, fallbackName string) (types.WordData, error) {
	var wd types.WordData
	switch f {
	case FormatText:
		wd.Words = strings.Split(string(data), "\n")
	case FormatYAML:
		if err := yaml.Unmarshal(data, &wd); err != nil {
			return types.WordData{}, err
		}
	default:
		if err := json.Unmarshal(data, &wd); err != nil {
			return types.WordData{}, err
		}
	}

	words := wd.Words[:0]
	for _, w := range wd.Words {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, w)
		}
	}
	wd.Words = words
	if len(wd.Words) == 0 {
		return types.WordData{}, ErrEmptyCorpus
	}
	if wd.Name == "" {
		wd.Name = fallbackName
	}
	return wd, nil
}

// quoteDocument is the on-disk shape of a quote collection. Groups is a
// slice so that a short list can be told apart from an omitted one.
type quoteDocument struct {
	Quotes []types.QuoteEntry  `json:"quotes" yaml:"quotes"`
	Groups []types.LengthRange `json:"groups" yaml:"groups"`
}

// ParseQuotes decodes a quote collection. Missing length buckets fall back
// to DefaultGroups; otherwise exactly one range per length category is
// required. A quote without a length gets the rune count of its text.
func ParseQuotes(data []byte, f Format) (types.QuoteData, error) {
	var doc quoteDocument
	var err error
	if f == FormatYAML {
		err = yaml.Unmarshal(data, &doc)
	} else {
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return types.QuoteData{}, err
	}

	qd := types.QuoteData{Quotes: doc.Quotes, Groups: DefaultGroups}
	switch len(doc.Groups) {
	case 0:
	case len(qd.Groups):
		copy(qd.Groups[:], doc.Groups)
	default:
		return types.QuoteData{}, fmt.Errorf("expected %d groups, got %d", len(qd.Groups), len(doc.Groups))
	}
	for i, g := range qd.Groups {
		if g[0] > g[1] {
			return types.QuoteData{}, fmt.Errorf("group %d: min %d exceeds max %d", i, g[0], g[1])
		}
	}
	for i := range qd.Quotes {
		if qd.Quotes[i].Length == 0 {
			qd.Quotes[i].Length = utf8.RuneCountInString(qd.Quotes[i].Text)
		}
	}
	return qd, nil
}

func isURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// FormatFor picks a Format from a file extension; unknown extensions are
// treated as JSON.
func FormatFor(ext string) Format {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".txt", ".list":
		return FormatText
	}
	return FormatJSON
}

// defaultName derives a corpus label from the file name, e.g.
// "data/english_1k.json" becomes "english_1k".
func defaultName(location string) string {
	if isURL(location) {
		if u, err := url.Parse(location); err == nil {
			location = u.Path
		}
	}
	base := path.Base(filepath.ToSlash(location))
	return strings.TrimSuffix(base, path.Ext(base))
}
