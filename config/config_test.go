package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load(map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, "/api", cfg.APIPrefix)
	assert.Equal(t, time.Second*30, cfg.Timeout)
	assert.Equal(t, time.Second, cfg.StepDelay)
	assert.Equal(t, "", cfg.FixturesPath)
	assert.Equal(t, DefaultBaseURL+"/api", cfg.APIBase())
}

func TestValuesFromEnvironment(t *testing.T) {
	cfg, err := Load(map[string]string{
		"MATCHMAKING_BASE_URL":   "http://localhost:3000/",
		"MATCHMAKING_API_PREFIX": "/v2/",
		"MATCHMAKING_TIMEOUT":    "5s",
		"MATCHMAKING_STEP_DELAY": "0s",
		"MATCHMAKING_FIXTURES":   "f.yaml",
	})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000/v2", cfg.APIBase())
	assert.Equal(t, time.Second*5, cfg.Timeout)
	assert.Equal(t, time.Duration(0), cfg.StepDelay)
	assert.Equal(t, "f.yaml", cfg.FixturesPath)
}

func TestInvalidValues(t *testing.T) {
	for name, environ := range map[string]map[string]string{
		"bad duration":    {"MATCHMAKING_TIMEOUT": "soon"},
		"relative url":    {"MATCHMAKING_BASE_URL": "localhost:3000"},
		"ftp url":         {"MATCHMAKING_BASE_URL": "ftp://example.com"},
		"zero timeout":    {"MATCHMAKING_TIMEOUT": "0s"},
		"negative delay":  {"MATCHMAKING_STEP_DELAY": "-1s"},
		"prefix no slash": {"MATCHMAKING_API_PREFIX": "api"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(environ)
			assert.Error(t, err)
		})
	}
}

func TestFromEnvironmentReadsDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("MATCHMAKING_BASE_URL=http://dotenv:8080\nMATCHMAKING_STEP_DELAY=250ms\n"), 0o600))
	t.Setenv("MATCHMAKING_STEP_DELAY", "2s")

	cfg, err := FromEnvironment(path)
	require.NoError(t, err)
	assert.Equal(t, "http://dotenv:8080", cfg.BaseURL)
	assert.Equal(t, time.Second*2, cfg.StepDelay)
}

func TestFromEnvironmentIgnoresMissingDotEnv(t *testing.T) {
	t.Setenv("MATCHMAKING_BASE_URL", "")
	cfg, err := FromEnvironment(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
}
