package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables recognized by the client. The API base URL is
// environment-configured so the same binary can target different deployments.
const (
	envAPIBaseURL     = "API_URL"
	envDatabasePath   = "DATABASE_PATH"
	envRequestTimeout = "REQUEST_TIMEOUT"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is loaded first; a missing file is not an
// error, and variables already set in the environment win over the file.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(envDatabasePath); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv(envRequestTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
}
