package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
	"github.com/iamasit07/4-in-a-row/engine/internal/service/bot"
)

type Config struct {
	Rows         int
	Columns      int
	SearchDepth  int
	Scoring      string
	ParallelRoot bool
	LogLevel     zerolog.Level
	HistoryFile  string
}

const ErrInvalidConfig domain.Error = "invalid configuration"

func LoadConfig() *Config {
	level, err := zerolog.ParseLevel(strings.ToLower(GetEnv("C4_LOG_LEVEL", "info")))
	if err != nil {
		log.Warn().Err(err).Msg("invalid C4_LOG_LEVEL, using info")
		level = zerolog.InfoLevel
	}

	return &Config{
		Rows:         GetEnvAsInt("C4_ROWS", domain.Rows),
		Columns:      GetEnvAsInt("C4_COLUMNS", domain.Columns),
		SearchDepth:  GetEnvAsInt("C4_SEARCH_DEPTH", bot.MINIMAX_DEPTH),
		Scoring:      GetEnv("C4_SCORING", bot.ScoringCompleted),
		ParallelRoot: GetEnvAsBool("C4_PARALLEL_ROOT", false),
		LogLevel:     level,
		HistoryFile:  GetEnv("C4_HISTORY_FILE", ""),
	}
}

// Validate rejects settings the engine cannot run with.
func (c *Config) Validate() error {
	if c.Rows < 1 || c.Columns < 1 {
		return fmt.Errorf("%w: board %dx%d", ErrInvalidConfig, c.Rows, c.Columns)
	}
	if c.Columns > 9 {
		// columns are typed as a single digit at the prompt
		return fmt.Errorf("%w: at most 9 columns, got %d", ErrInvalidConfig, c.Columns)
	}
	if c.SearchDepth < 1 {
		return fmt.Errorf("%w: search depth %d", ErrInvalidConfig, c.SearchDepth)
	}
	if _, err := bot.EvaluatorFor(c.Scoring); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// PlayerOptions maps the search settings onto bot.Options.
func (c *Config) PlayerOptions() bot.Options {
	return bot.Options{
		Depth:    c.SearchDepth,
		Scoring:  c.Scoring,
		Parallel: c.ParallelRoot,
	}
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Int("default", defaultValue).
			Msg("invalid integer value, using default")
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Bool("default", defaultValue).
			Msg("invalid boolean value, using default")
		return defaultValue
	}
	return value
}
