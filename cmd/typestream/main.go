// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the typestream CLI, which generates
// typing-practice content from word lists and quote collections.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the typestream CLI.
var rootCmd = &cobra.Command{
	Use:   "typestream",
	Short: "Generate word and quote streams for typing practice",
	Long: `typestream produces the content of a typing test: random words for timed
and word-count tests, or a quote chosen by id or length. Punctuation,
contractions, and numbers can be mixed in.

Settings come from flags, a typestream.yaml config file, or TYPESTREAM_*
environment variables, in that order of precedence.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./typestream.yaml or ~/.config/typestream/config.yaml)")
	rootCmd.PersistentFlags().String("history-dir", "", "directory holding history.db (default: ~/.local/share/typestream)")
	viper.BindPFlag("history.dir", rootCmd.PersistentFlags().Lookup("history-dir"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("typestream")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "typestream"))
		}
	}

	setDefaults()
	viper.SetEnvPrefix("TYPESTREAM")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
