package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"geocoder": map[string]any{
			"requestsPerMinute": 50,
			"baseUrl":           "",
		},
		"generation": map[string]any{
			"apiKey": "",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "GEOCODER_REQUESTSPERMINUTE", want: "geocoder.requestsPerMinute"},
		{envKey: "GEOCODER_BASEURL", want: "geocoder.baseUrl"},
		{envKey: "GENERATION_APIKEY", want: "generation.apiKey"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_OverridesYAMLWithEnv(t *testing.T) {
	dir := t.TempDir()
	yamlBody := []byte(`
env:
  env: develop
  log:
    level: info
generation:
  enabled: true
  model: gpt-4o-mini
geocoder:
  requestsPerMinute: 50
search:
  enrichmentWorkers: 2
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), yamlBody, 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	t.Setenv("GENERATION_MODEL", "gpt-4.1-mini")
	t.Setenv("GEOCODER_REQUESTSPERMINUTE", "30")

	cfg, err := LoadWithEnv[Config]("test", rel)
	require.NoError(t, err)

	assert.Equal(t, "develop", cfg.Env.Env)
	assert.True(t, cfg.Generation.Enabled)
	assert.Equal(t, "gpt-4.1-mini", cfg.Generation.Model)
	assert.Equal(t, 30, cfg.Geocoder.RequestsPerMinute)
	assert.Equal(t, 2, cfg.Search.EnrichmentWorkers)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "file:wander.db", cfg.Store.DSN)
	assert.Equal(t, 10, cfg.Generation.MaxActivities)
	assert.Equal(t, 50, cfg.Geocoder.RequestsPerMinute)
	assert.Equal(t, 5, cfg.Geocoder.Burst)
	assert.Equal(t, 64, cfg.Search.MessageBuffer)
	assert.Equal(t, 4, cfg.Search.EnrichmentWorkers)
	assert.Equal(t, 1, cfg.Search.LocationMaxUpdates)
	assert.Equal(t, 16, cfg.Search.LocationSubscriberBuffer)
}
