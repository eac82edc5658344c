package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "http://localhost:3000", cfg.APIBaseURL)
	assert.Equal(t, "inspira.db", cfg.DatabasePath)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestParseEnv_Overrides(t *testing.T) {
	chdir(t, t.TempDir()) // no stray .env
	t.Setenv("API_URL", "https://api.example.com")
	t.Setenv("DATABASE_PATH", "/tmp/q.db")
	t.Setenv("REQUEST_TIMEOUT", "5s")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "https://api.example.com", cfg.APIBaseURL)
	assert.Equal(t, "/tmp/q.db", cfg.DatabasePath)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestParseEnv_InvalidTimeoutKeepsDefault(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("REQUEST_TIMEOUT", "soon")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestParseEnv_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	err := os.WriteFile(".env", []byte("API_URL=http://from-dotenv:3000\n"), 0o600)
	assert.NoError(t, err)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "http://from-dotenv:3000", cfg.APIBaseURL)
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
