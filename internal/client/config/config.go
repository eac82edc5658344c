// Package config loads runtime settings for the Inspira CLI.
package config

import "time"

// Config holds runtime settings for the Inspira CLI.
//
// Fields:
//   - APIBaseURL: base URL of the remote quote API (e.g. http://localhost:3000).
//   - DatabasePath: path of the local SQLite database file.
//   - RequestTimeout: per-request timeout for calls to the quote API.
type Config struct {
	APIBaseURL     string
	DatabasePath   string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3000"
	c.DatabasePath = "inspira.db"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including a .env file if present), a JSON file (if
// present), and command-line flags. Later sources take precedence over
// earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
