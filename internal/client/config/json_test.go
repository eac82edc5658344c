package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJsonConfig_Unmarshal(t *testing.T) {
	data := []byte(`{
		"api_base_url": "https://quotes.example.com",
		"database_path": "data/inspira.db",
		"request_timeout": "15s"
	}`)

	var jc JsonConfig
	require.NoError(t, json.Unmarshal(data, &jc))

	assert.Equal(t, "https://quotes.example.com", jc.APIBaseURL)
	assert.Equal(t, "data/inspira.db", jc.DatabasePath)
	assert.Equal(t, 15*time.Second, jc.RequestTimeout.Duration)
}

func TestJsonConfig_PartialFileKeepsDefaults(t *testing.T) {
	var jc JsonConfig
	require.NoError(t, json.Unmarshal([]byte(`{"api_base_url": "https://x.io"}`), &jc))

	cfg := &Config{}
	cfg.LoadDefaults()

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}

	assert.Equal(t, "https://x.io", cfg.APIBaseURL)
	assert.Equal(t, "inspira.db", cfg.DatabasePath)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}
