package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "inbox-assistant", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())

	assert.Equal(t, "http://localhost:11434/v1", cfg.AI.BaseURL)
	assert.Equal(t, "llama3.2", cfg.AI.Model)
	assert.Equal(t, 0.2, cfg.AI.Temperature)
	assert.Equal(t, 120*time.Second, cfg.AI.RequestTimeout())
	assert.Equal(t, 300*time.Second, cfg.AI.WarmupTimeout())
	assert.Equal(t, "prompts/extraction.md", cfg.AI.PromptPath)

	assert.Equal(t, 60*time.Second, cfg.Metrics.SummaryCacheTTL())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AI_MODEL", "llama3-groq-70b")
	t.Setenv("AI_TEMPERATURE", "0.5")
	t.Setenv("AI_REQUEST_TIMEOUT_SECONDS", "15")
	t.Setenv("METRICS_SUMMARY_CACHE_TTL_SECONDS", "0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "llama3-groq-70b", cfg.AI.Model)
	assert.Equal(t, 0.5, cfg.AI.Temperature)
	assert.Equal(t, 15*time.Second, cfg.AI.RequestTimeout())
	assert.Equal(t, time.Duration(0), cfg.Metrics.SummaryCacheTTL())
}

func TestLoadRejectsBadTemperature(t *testing.T) {
	t.Setenv("AI_TEMPERATURE", "warm")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AI_TEMPERATURE")
}
