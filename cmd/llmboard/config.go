package main

import (
	"github.com/spf13/cobra"

	"llmboard/internal/config"
)

// resolveConfig merges, in increasing precedence: built-in defaults,
// LLMBOARD_* environment, the config file, explicitly set flags.
func resolveConfig(cmd *cobra.Command, path string, flags config.Config) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		c, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = c
	}

	set := cmd.Flags().Changed
	if set("addr") {
		cfg.Addr = flags.Addr
	}
	if set("dataset") {
		cfg.DatasetPath = flags.DatasetPath
	}
	if set("base-url") {
		cfg.BaseURL = flags.BaseURL
	}
	if set("log-level") {
		cfg.LogLevel = flags.LogLevel
	}
	if set("log-format") {
		cfg.LogFormat = flags.LogFormat
	}
	if set("max-body-bytes") {
		cfg.MaxBodyBytes = flags.MaxBodyBytes
	}
	if set("recompute-ranks") {
		cfg.RecomputeRanks = flags.RecomputeRanks
	}
	if set("watch") {
		w, err := cmd.Flags().GetBool("watch")
		if err != nil {
			return cfg, err
		}
		cfg.WatchDataset = config.Bool(w)
	}
	if set("cors-origins") {
		cfg.CORSOrigins = flags.CORSOrigins
		cfg.CORSEnabled = len(flags.CORSOrigins) > 0
	}

	cfg = cfg.ApplyEnv().WithDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
