package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"llmboard/internal/common/fsutil"
)

// Config holds runtime parameters for the service.
// Zero values mean "unspecified" and are replaced by WithDefaults.
type Config struct {
	Addr string `json:"addr" yaml:"addr" toml:"addr"`
	// DatasetPath points at a models JSON file. Empty serves the bundled dataset.
	DatasetPath string `json:"dataset_path" yaml:"dataset_path" toml:"dataset_path"`
	// BaseURL is the public site origin used in sitemap.xml and robots.txt.
	BaseURL      string `json:"base_url" yaml:"base_url" toml:"base_url"`
	LogLevel     string `json:"log_level" yaml:"log_level" toml:"log_level"`
	LogFormat    string `json:"log_format" yaml:"log_format" toml:"log_format"`
	MaxBodyBytes int64  `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes"`
	// RecomputeRanks derives ranks at load time instead of trusting the file.
	RecomputeRanks bool `json:"recompute_ranks" yaml:"recompute_ranks" toml:"recompute_ranks"`
	// WatchDataset reloads DatasetPath when it changes on disk. Nil means
	// unset, so an explicit false is not overridden by the environment.
	WatchDataset *bool    `json:"watch_dataset" yaml:"watch_dataset" toml:"watch_dataset"`
	CORSEnabled  bool     `json:"cors_enabled" yaml:"cors_enabled" toml:"cors_enabled"`
	CORSOrigins  []string `json:"cors_origins" yaml:"cors_origins" toml:"cors_origins"`
}

// Defaults used when neither file, flag nor environment sets a value.
const (
	DefaultAddr         = ":8080"
	DefaultBaseURL      = "https://llmleaderboard.example.com"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "json"
	DefaultMaxBodyBytes = 64 << 10
)

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := fsutil.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}

// ApplyEnv fills unset fields from LLMBOARD_* environment variables.
func (c Config) ApplyEnv() Config {
	if c.Addr == "" {
		c.Addr = os.Getenv("LLMBOARD_ADDR")
	}
	if c.DatasetPath == "" {
		c.DatasetPath = os.Getenv("LLMBOARD_DATASET")
	}
	if c.BaseURL == "" {
		c.BaseURL = os.Getenv("LLMBOARD_BASE_URL")
	}
	if c.LogLevel == "" {
		c.LogLevel = os.Getenv("LLMBOARD_LOG_LEVEL")
	}
	if c.WatchDataset == nil && os.Getenv("LLMBOARD_WATCH") != "" {
		c.WatchDataset = Bool(envBool("LLMBOARD_WATCH", false))
	}
	return c
}

// Watch reports whether dataset reloading is on.
func (c Config) Watch() bool { return c.WatchDataset != nil && *c.WatchDataset }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// WithDefaults fills every remaining zero value.
func (c Config) WithDefaults() Config {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = DefaultLogFormat
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = DefaultMaxBodyBytes
	}
	return c
}

// Validate rejects combinations the service cannot run with.
func (c Config) Validate() error {
	if c.Watch() && c.DatasetPath == "" {
		return fmt.Errorf("watch_dataset requires dataset_path")
	}
	if c.CORSEnabled && len(c.CORSOrigins) == 0 {
		return fmt.Errorf("cors_enabled requires at least one cors_origins entry")
	}
	if c.BaseURL != "" && !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("base_url must start with http:// or https://: %q", c.BaseURL)
	}
	return nil
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	s := strings.ToLower(v)
	return s == "1" || s == "true" || s == "yes"
}
