package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SEARCH_DEPTH", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg := LoadConfig()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 4, cfg.SearchDepth)
	assert.Equal(t, 24*time.Hour, cfg.MatchTokenTTL)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
	assert.Same(t, cfg, AppConfig)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SEARCH_DEPTH", "6")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("LOG_PRETTY", "true")

	cfg := LoadConfig()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 6, cfg.SearchDepth)
	assert.True(t, cfg.LogPretty)
	assert.Equal(t, []string{"http://localhost:5173", "https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestGetEnvAsIntFallsBackOnGarbage(t *testing.T) {
	t.Setenv("SOME_INT", "four")
	assert.Equal(t, 4, GetEnvAsInt("SOME_INT", 4))
}
