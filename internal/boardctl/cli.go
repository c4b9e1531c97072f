// Package boardctl implements the offline maintenance commands: rank
// derivation, knowledge-cutoff backfill, crawler artifacts, dataset
// validation and a table preview.
package boardctl

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Config carries the global flags and the command I/O.
type Config struct {
	Dataset   string
	LogLvl    string
	LogFormat string
	Out       io.Writer
	Err       io.Writer
	Now       func() time.Time
}

// DefaultConfig reads BOARDCTL_* environment defaults.
func DefaultConfig() *Config {
	return &Config{
		Dataset:   envStr("BOARDCTL_DATASET", ""),
		LogLvl:    envStr("BOARDCTL_LOG_LEVEL", "info"),
		LogFormat: envStr("BOARDCTL_LOG_FORMAT", "console"),
		Out:       os.Stdout,
		Err:       os.Stderr,
		Now:       time.Now,
	}
}

// Execute runs one command line against cfg. It returns an error instead of
// exiting, enabling reuse from tests.
func Execute(args []string, cfg *Config) error {
	root := buildRootCmdWith(cfg)
	root.SetArgs(args)
	if cfg.Out != nil {
		root.SetOut(cfg.Out)
	}
	if cfg.Err != nil {
		root.SetErr(cfg.Err)
	}
	return root.Execute()
}

// MainWithArgs maps Execute onto process exit codes: 2 for a bare
// invocation, 1 for a failed command.
func MainWithArgs(args []string) int {
	cfg := DefaultConfig()
	if len(args) == 0 {
		root := buildRootCmdWith(cfg)
		root.SetOut(cfg.Err)
		_ = root.Usage()
		return 2
	}
	if err := Execute(args, cfg); err != nil {
		fmt.Fprintln(cfg.Err, err.Error())
		return 1
	}
	return 0
}

// Main returns an exit code for use by cmd/boardctl.
func Main() int { return MainWithArgs(os.Args[1:]) }

func envStr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
