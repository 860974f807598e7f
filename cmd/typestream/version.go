// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/pdiddy/typestream/internal/corpus"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the typestream version and built-in word list",
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeVersion(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// writeVersion prints the build version followed by the Go toolchain and
// the word list used when no --words-file is given.
func writeVersion(w io.Writer, v string) error {
	wd := corpus.Default()
	_, err := fmt.Fprintf(w, "typestream %s\n  go: %s\n  default corpus: %s (%d words)\n",
		v, runtime.Version(), wd.Name, len(wd.Words))
	return err
}
