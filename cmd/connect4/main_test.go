package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamasit07/4-in-a-row/engine/internal/config"
)

func restoreLogging(t *testing.T) {
	t.Helper()
	logger, level := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = logger
		zerolog.SetGlobalLevel(level)
	})
}

func TestSetupLogsMissingEnvFileAtConfiguredLevel(t *testing.T) {
	restoreLogging(t)
	t.Setenv("C4_LOG_LEVEL", "debug")
	missing := filepath.Join(t.TempDir(), "missing.env")

	var buf bytes.Buffer
	cfg, err := setup(&buf, missing)
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	assert.Contains(t, buf.String(), "no .env file found")
	assert.Contains(t, buf.String(), "config-loaded")
}

func TestSetupHidesDebugEventsAtInfo(t *testing.T) {
	restoreLogging(t)
	t.Setenv("C4_LOG_LEVEL", "info")
	missing := filepath.Join(t.TempDir(), "missing.env")

	var buf bytes.Buffer
	_, err := setup(&buf, missing)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestSetupReadsEnvFile(t *testing.T) {
	restoreLogging(t)
	for _, key := range []string{"C4_ROWS", "C4_LOG_LEVEL"} {
		key := key
		prev, ok := os.LookupEnv(key)
		require.NoError(t, os.Unsetenv(key))
		t.Cleanup(func() {
			if ok {
				os.Setenv(key, prev)
			} else {
				os.Unsetenv(key)
			}
		})
	}
	env := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(env, []byte("C4_ROWS=5\nC4_LOG_LEVEL=debug\n"), 0o600))

	var buf bytes.Buffer
	cfg, err := setup(&buf, env)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Rows)
	assert.NotContains(t, buf.String(), "no .env file found")
	assert.Contains(t, buf.String(), "config-loaded")
}

func TestSetupRejectsBadConfig(t *testing.T) {
	restoreLogging(t)
	t.Setenv("C4_COLUMNS", "12")

	var buf bytes.Buffer
	_, err := setup(&buf, filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
