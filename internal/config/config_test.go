package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/travelgenie/backend/internal/config"
)

// TestLoad_defaults verifies that optional env vars fall back to their
// defaults when nothing is set.
func TestLoad_defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	require.Empty(t, cfg.GeminiAPIKey)
}

// TestLoad_overrides verifies that all values can be overridden via env vars.
func TestLoad_overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	require.Equal(t, "test-key", cfg.GeminiAPIKey)
}

// TestLoad_invalidLogLevel verifies that an unknown LOG_LEVEL is rejected
// and the error names the offending value.
func TestLoad_invalidLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")

	_, err := config.Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "verbose")
}
