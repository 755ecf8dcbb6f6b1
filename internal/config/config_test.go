package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"C4_ROWS", "C4_COLUMNS", "C4_SEARCH_DEPTH", "C4_SCORING",
		"C4_PARALLEL_ROOT", "C4_LOG_LEVEL", "C4_HISTORY_FILE"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	assert.Equal(t, 6, cfg.Rows)
	assert.Equal(t, 7, cfg.Columns)
	assert.Equal(t, 4, cfg.SearchDepth)
	assert.Equal(t, "completed", cfg.Scoring)
	assert.False(t, cfg.ParallelRoot)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	assert.Empty(t, cfg.HistoryFile)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("C4_ROWS", "5")
	t.Setenv("C4_COLUMNS", "8")
	t.Setenv("C4_SEARCH_DEPTH", "6")
	t.Setenv("C4_SCORING", "windowed")
	t.Setenv("C4_PARALLEL_ROOT", "true")
	t.Setenv("C4_LOG_LEVEL", "DEBUG")
	t.Setenv("C4_HISTORY_FILE", "/tmp/c4.history")

	cfg := LoadConfig()
	assert.Equal(t, 5, cfg.Rows)
	assert.Equal(t, 8, cfg.Columns)
	assert.Equal(t, 6, cfg.SearchDepth)
	assert.Equal(t, "windowed", cfg.Scoring)
	assert.True(t, cfg.ParallelRoot)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	assert.Equal(t, "/tmp/c4.history", cfg.HistoryFile)
	require.NoError(t, cfg.Validate())

	opts := cfg.PlayerOptions()
	assert.Equal(t, 6, opts.Depth)
	assert.Equal(t, "windowed", opts.Scoring)
	assert.True(t, opts.Parallel)
}

func TestMalformedValuesFallBack(t *testing.T) {
	t.Setenv("C4_SEARCH_DEPTH", "deep")
	t.Setenv("C4_PARALLEL_ROOT", "maybe")
	t.Setenv("C4_LOG_LEVEL", "loud")

	cfg := LoadConfig()
	assert.Equal(t, 4, cfg.SearchDepth)
	assert.False(t, cfg.ParallelRoot)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	base := Config{Rows: 6, Columns: 7, SearchDepth: 4, Scoring: "completed"}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"no rows", func(c *Config) { c.Rows = 0 }},
		{"too many columns", func(c *Config) { c.Columns = 10 }},
		{"zero depth", func(c *Config) { c.SearchDepth = 0 }},
		{"unknown scoring", func(c *Config) { c.Scoring = "vibes" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}
}
