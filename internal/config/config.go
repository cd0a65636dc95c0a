// Package config holds recipedex configuration: where the recipe service
// lives and how the interactive client behaves. Values come from defaults,
// an optional YAML file, then environment overrides, in that order.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full recipedex configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Query   QueryConfig   `yaml:"query"`
	Suggest SuggestConfig `yaml:"suggest"`
}

// ServerConfig locates the recipe service.
type ServerConfig struct {
	BaseURL string `yaml:"base_url"`
}

// QueryConfig controls search requests.
type QueryConfig struct {
	// Limit is the default result count (the k parameter).
	Limit int `yaml:"limit"`
}

// SuggestConfig controls the autosuggest behavior of ingredient fields.
type SuggestConfig struct {
	// DebounceMS is the quiet window, in milliseconds, before a suggestion
	// fetch fires.
	DebounceMS int `yaml:"debounce_ms"`
	// MinQuery is the minimum entry length that triggers a fetch.
	MinQuery int `yaml:"min_query"`
	// Limit is the suggestion count requested per fetch.
	Limit int `yaml:"limit"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			BaseURL: "http://127.0.0.1:8000",
		},
		Query: QueryConfig{
			Limit: 5,
		},
		Suggest: SuggestConfig{
			DebounceMS: 250,
			MinQuery:   2,
			Limit:      8,
		},
	}
}

// Load reads configuration from path, layered over the defaults. A missing
// file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv layers RECIPEDEX_* environment variables over the current values.
func (c *Config) applyEnv() {
	if v := os.Getenv("RECIPEDEX_SERVER"); v != "" {
		c.Server.BaseURL = v
	}
	if v := os.Getenv("RECIPEDEX_QUERY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Query.Limit = n
		}
	}
	if v := os.Getenv("RECIPEDEX_SUGGEST_DEBOUNCE_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Suggest.DebounceMS = n
		}
	}
}

// Debounce returns the suggestion quiet window as a duration.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Suggest.DebounceMS) * time.Millisecond
}
