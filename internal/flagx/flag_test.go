package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs_SeparateValue(t *testing.T) {
	args := []string{"-a", "http://api", "-x", "ignored", "-d", "quotes.db"}
	got := FilterArgs(args, []string{"-a", "-d"})
	assert.Equal(t, []string{"-a", "http://api", "-d", "quotes.db"}, got)
}

func TestFilterArgs_EqualsForm(t *testing.T) {
	args := []string{"--config=conf.json", "--other=1"}
	got := FilterArgs(args, []string{"--config"})
	assert.Equal(t, []string{"--config=conf.json"}, got)
}

func TestFilterArgs_FlagWithoutValue(t *testing.T) {
	args := []string{"-a", "-d", "quotes.db"}
	got := FilterArgs(args, []string{"-a", "-d"})
	assert.Equal(t, []string{"-a", "-d", "quotes.db"}, got)
}

func TestFilterArgs_Empty(t *testing.T) {
	got := FilterArgs(nil, []string{"-a"})
	assert.Empty(t, got)
	assert.NotNil(t, got)
}
