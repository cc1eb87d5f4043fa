package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-matcher/internal/config"
	"alfredoptarigan/resume-matcher/internal/handlers"
	"alfredoptarigan/resume-matcher/mocks"
)

func TestNewApp_Routes(t *testing.T) {
	cfg := &config.Config{Upload: config.UploadConfig{MaxFileSize: 1 << 20}}
	analyzer := new(mocks.MockAnalyzerService)

	pageHandler := handlers.NewPageHandler(analyzer, cfg.Upload.MaxFileSize)
	app := NewApp(cfg, handlers.NewAnalyzeHandler(analyzer, cfg.Upload.MaxFileSize), pageHandler)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var errBody map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	assert.EqualValues(t, http.StatusNotFound, errBody["code"])
}

func TestNewApp_ProductionSilencesStartupBanner(t *testing.T) {
	analyzer := new(mocks.MockAnalyzerService)
	newApp := func(env string) bool {
		cfg := &config.Config{
			Server: config.ServerConfig{Env: env},
			Upload: config.UploadConfig{MaxFileSize: 1 << 20},
		}
		app := NewApp(cfg, handlers.NewAnalyzeHandler(analyzer, 1<<20), handlers.NewPageHandler(analyzer, 1<<20))
		return app.Config().DisableStartupMessage
	}

	assert.True(t, newApp("production"))
	assert.False(t, newApp("development"))
}
