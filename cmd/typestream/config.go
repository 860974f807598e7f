// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/typestream/pkg/types"
)

func setDefaults() {
	viper.SetDefault("mode", "time 30")
	viper.SetDefault("punctuation", false)
	viper.SetDefault("numbers", false)
	viper.SetDefault("http.timeout", 30*time.Second)
	viper.SetDefault("http.user_agent", "typestream/"+version)
	viper.SetDefault("http.max_retries", 5)
	viper.SetDefault("history.enabled", true)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

// loadConfig assembles the session settings from viper, which already
// layers flags over environment over config file over defaults.
func loadConfig() types.Config {
	cfg := types.Config{
		WordsFile:   viper.GetString("words_file"),
		QuotesFile:  viper.GetString("quotes_file"),
		Mode:        viper.GetString("mode"),
		Punctuation: viper.GetBool("punctuation"),
		Numbers:     viper.GetBool("numbers"),
		HTTP: types.HTTPConfig{
			Timeout:    viper.GetDuration("http.timeout"),
			UserAgent:  viper.GetString("http.user_agent"),
			MaxRetries: viper.GetInt("http.max_retries"),
		},
		History: types.HistoryConfig{
			Enabled: viper.GetBool("history.enabled"),
			Dir:     viper.GetString("history.dir"),
		},
	}
	if cfg.History.Dir == "" {
		cfg.History.Dir = defaultHistoryDir()
	}
	return cfg
}

func defaultHistoryDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "typestream")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".typestream"
	}
	return filepath.Join(home, ".local", "share", "typestream")
}
