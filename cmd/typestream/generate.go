// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/typestream/internal/corpus"
	"github.com/pdiddy/typestream/internal/generator"
	"github.com/pdiddy/typestream/internal/history"
	"github.com/pdiddy/typestream/internal/session"
	"github.com/pdiddy/typestream/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the content stream for a typing test",
	Long: `Generate produces the opening word stream for the configured mode and
prints it. With --advance N the typist is simulated consuming N words, and
each word appended in response is reported on stderr.

Modes: "time <seconds>", "words <count>", "quote <short|medium|long|very long|all>",
or "quote id <n>".`,
	RunE: runGenerate,
}

// generateOutput is the --json form of a generated session.
type generateOutput struct {
	TestType        string   `json:"test_type"`
	Words           []string `json:"words"`
	PendingQuote    int      `json:"pending_quote_words,omitempty"`
	TotalQuoteWords int      `json:"total_quote_words,omitempty"`
	QuoteSource     string   `json:"quote_source,omitempty"`
	GeneratedCount  int      `json:"generated_count,omitempty"`
	HistoryID       string   `json:"history_id,omitempty"`
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	mode, err := types.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}

	ctx := context.Background()
	loader := corpus.NewLoader(cfg.HTTP, os.Stderr)

	words := corpus.Default()
	if cfg.WordsFile != "" {
		if words, err = loader.LoadWords(ctx, cfg.WordsFile); err != nil {
			return err
		}
	}

	var quotes types.QuoteData
	if cfg.QuotesFile != "" {
		if quotes, err = loader.LoadQuotes(ctx, cfg.QuotesFile); err != nil {
			return err
		}
	} else if _, ok := mode.(types.QuoteMode); ok {
		fmt.Fprintln(os.Stderr, "warning: quote mode without quotes_file")
	}

	var opts []generator.Option
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetUint64("seed")
		opts = append(opts, generator.WithSeed(seed))
	}
	gen := generator.New(words, cfg.Numbers, cfg.Punctuation, opts...)

	sess := session.New(gen, mode, quotes)
	sess.Start()

	advance, _ := cmd.Flags().GetInt("advance")
	for i := 0; i < advance && !sess.Done(); i++ {
		if next := sess.Advance(); len(next) > 0 {
			fmt.Fprintf(os.Stderr, "appended: %s\n", strings.Join(next, " "))
		}
	}

	out := generateOutput{
		TestType:        sess.Label(),
		Words:           sess.Words(),
		PendingQuote:    sess.Pending(),
		TotalQuoteWords: sess.TotalQuoteWords(),
		QuoteSource:     sess.QuoteSource(),
		GeneratedCount:  sess.GeneratedCount(),
	}

	if cfg.History.Enabled {
		id, err := recordSession(ctx, cfg.History.Dir, sess)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not record history: %v\n", err)
		}
		out.HistoryID = id
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	width, _ := cmd.Flags().GetInt("width")
	return writeGenerateOutput(os.Stdout, out, jsonOutput, width)
}

func recordSession(ctx context.Context, dir string, sess *session.Session) (string, error) {
	store, err := history.Open(dir)
	if err != nil {
		return "", err
	}
	defer store.Close()

	e, err := store.Add(ctx, types.HistoryEntry{
		Mode:        session.ModeLabel(sess.Mode(), sess.QuoteLength()),
		TestType:    sess.Label(),
		Words:       len(sess.Words()),
		QuoteSource: sess.QuoteSource(),
	})
	if err != nil {
		return "", err
	}
	return e.ID, nil
}

func writeGenerateOutput(w io.Writer, out generateOutput, jsonOutput bool, width int) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Fprintf(w, "test type: %s\n", out.TestType)
	if out.QuoteSource != "" {
		fmt.Fprintf(w, "source: %s\n", out.QuoteSource)
	}
	fmt.Fprintln(w)
	for _, line := range wrapWords(out.Words, width) {
		fmt.Fprintln(w, line)
	}
	if out.PendingQuote > 0 {
		fmt.Fprintf(w, "\n(%d more quote words queued)\n", out.PendingQuote)
	}
	return nil
}

// wrapWords lays words out in lines no wider than width runes. A width of
// 0 or less puts everything on one line.
func wrapWords(words []string, width int) []string {
	if len(words) == 0 {
		return nil
	}
	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	var b strings.Builder
	n := 0
	for _, word := range words {
		wl := len([]rune(word))
		if n > 0 && n+1+wl > width {
			lines = append(lines, b.String())
			b.Reset()
			n = 0
		}
		if n > 0 {
			b.WriteByte(' ')
			n++
		}
		b.WriteString(word)
		n += wl
	}
	return append(lines, b.String())
}

func init() {
	generateCmd.Flags().String("mode", "", `test mode, e.g. "time 30", "words 50", "quote short", "quote id 12"`)
	generateCmd.Flags().Bool("punctuation", false, "add contractions, punctuation, and dashes")
	generateCmd.Flags().Bool("numbers", false, "mix in random numbers")
	generateCmd.Flags().String("words-file", "", "word list (JSON, YAML, or text; path or URL)")
	generateCmd.Flags().String("quotes-file", "", "quote collection (JSON or YAML; path or URL)")
	generateCmd.Flags().Uint64("seed", 0, "seed for reproducible output")
	generateCmd.Flags().Int("advance", 0, "simulate typing this many words")
	generateCmd.Flags().Int("width", 80, "wrap text output at this many characters (0 = no wrap)")
	generateCmd.Flags().Bool("json", false, "output the session as JSON")

	viper.BindPFlag("mode", generateCmd.Flags().Lookup("mode"))
	viper.BindPFlag("punctuation", generateCmd.Flags().Lookup("punctuation"))
	viper.BindPFlag("numbers", generateCmd.Flags().Lookup("numbers"))
	viper.BindPFlag("words_file", generateCmd.Flags().Lookup("words-file"))
	viper.BindPFlag("quotes_file", generateCmd.Flags().Lookup("quotes-file"))

	rootCmd.AddCommand(generateCmd)
}
