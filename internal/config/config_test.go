package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("MAX_FILE_SIZE", "")

	cfg := Load()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, int64(10485760), cfg.Upload.MaxFileSize)
	assert.ErrorIs(t, cfg.Validate(), ErrMissingAPIKey)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ENV", "production")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("MAX_FILE_SIZE", "2048")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Env)
	assert.Equal(t, "test-key", cfg.Gemini.APIKey)
	assert.Equal(t, int64(2048), cfg.Upload.MaxFileSize)
	require.NoError(t, cfg.Validate())
}

func TestLoad_InvalidMaxFileSizeFallsBack(t *testing.T) {
	t.Setenv("MAX_FILE_SIZE", "lots")
	assert.Equal(t, int64(10485760), Load().Upload.MaxFileSize)

	t.Setenv("MAX_FILE_SIZE", "-1")
	assert.Equal(t, int64(10485760), Load().Upload.MaxFileSize)
}
