package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, "10-M", cfg.HTTP.RateLimit)
	assert.Equal(t, 86400, cfg.Auth.SessionMaxAge)
	assert.Equal(t, 24, cfg.Auth.TokenTTLHours)
	assert.False(t, cfg.SeedDemo)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SEED_DEMO_DATA", "true")
	t.Setenv("AUTH_RATE_LIMIT", "5-M")

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, "5-M", cfg.HTTP.RateLimit)
	assert.True(t, cfg.SeedDemo)
}
