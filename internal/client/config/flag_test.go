package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func withArgs(t *testing.T, args []string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"inspira"}, args...)
}

func TestParseFlags_Overrides(t *testing.T) {
	withArgs(t, []string{"-a", "http://flagged:9999", "-d", "other.db", "-t", "3"})

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "http://flagged:9999", cfg.APIBaseURL)
	assert.Equal(t, "other.db", cfg.DatabasePath)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
}

func TestParseFlags_UnknownFlagsIgnored(t *testing.T) {
	withArgs(t, []string{"-verbose", "-a", "http://only-a"})

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "http://only-a", cfg.APIBaseURL)
	assert.Equal(t, "inspira.db", cfg.DatabasePath)
}
