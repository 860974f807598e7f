// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/typestream/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List, export, or clear recorded sessions",
	Long: `History manages the local SQLite log of generated sessions. Only session
metadata is stored: mode, test type, word count, and quote source.`,
}

// --- list subcommand ---

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show recent sessions, newest first",
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := history.Open(loadConfig().History.Dir)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	entries, err := store.List(context.Background(), limit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No sessions recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-36s  %-19s  %-16s  %-6s  %s\n", "ID", "Created", "Mode", "Words", "Source")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))
	for _, e := range entries {
		source := e.QuoteSource
		if len(source) > 20 {
			source = source[:17] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-36s  %-19s  %-16s  %-6d  %s\n",
			e.ID, e.CreatedAt.Local().Format("2006-01-02 15:04:05"), e.Mode, e.Words, source)
	}
	fmt.Fprintf(os.Stdout, "\n%d sessions\n", len(entries))
	return nil
}

// --- export subcommand ---

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write every recorded session to stdout as YAML or JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.Open(loadConfig().History.Dir)
		if err != nil {
			return err
		}
		defer store.Close()

		format, _ := cmd.Flags().GetString("format")
		return store.Export(context.Background(), os.Stdout, format)
	},
}

// --- clear subcommand ---

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every recorded session",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.Open(loadConfig().History.Dir)
		if err != nil {
			return err
		}
		defer store.Close()

		n, err := store.Clear(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("Removed %d sessions.\n", n)
		return nil
	},
}

func init() {
	historyListCmd.Flags().Int("limit", 20, "maximum sessions to show (0 = all)")
	historyExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyClearCmd)

	rootCmd.AddCommand(historyCmd)
}
