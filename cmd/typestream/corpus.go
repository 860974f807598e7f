// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/typestream/internal/corpus"
	"github.com/pdiddy/typestream/pkg/types"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Summarize the configured word list and quote collection",
	Long: `Corpus loads the configured words_file and quotes_file and prints the
word count and the number of quotes in each length bucket. Use it to check
a corpus file before starting a test.`,
	RunE: runCorpus,
}

func runCorpus(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if f, _ := cmd.Flags().GetString("words-file"); f != "" {
		cfg.WordsFile = f
	}
	if f, _ := cmd.Flags().GetString("quotes-file"); f != "" {
		cfg.QuotesFile = f
	}
	ctx := context.Background()
	loader := corpus.NewLoader(cfg.HTTP, os.Stderr)

	words := corpus.Default()
	if cfg.WordsFile != "" {
		var err error
		if words, err = loader.LoadWords(ctx, cfg.WordsFile); err != nil {
			return err
		}
	}
	fmt.Printf("words:  %s (%d words)\n", words.Name, len(words.Words))

	if cfg.QuotesFile == "" {
		fmt.Println("quotes: none configured")
		return nil
	}
	quotes, err := loader.LoadQuotes(ctx, cfg.QuotesFile)
	if err != nil {
		return err
	}
	fmt.Printf("quotes: %d\n", len(quotes.Quotes))
	for _, l := range []types.QuoteLength{types.QuoteShort, types.QuoteMedium, types.QuoteLong, types.QuoteVeryLong} {
		r := quotes.Range(l)
		n := 0
		for _, q := range quotes.Quotes {
			if r.Contains(q.Length) {
				n++
			}
		}
		fmt.Printf("  %-9s [%d, %d]: %d\n", l, r[0], r[1], n)
	}
	return nil
}

func init() {
	corpusCmd.Flags().String("words-file", "", "word list (JSON, YAML, or text; path or URL)")
	corpusCmd.Flags().String("quotes-file", "", "quote collection (JSON or YAML; path or URL)")

	rootCmd.AddCommand(corpusCmd)
}
