package main

import (
	"io"
	"os"
	"time"

	"github.com/chzyer/readline"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iamasit07/4-in-a-row/engine/internal/config"
	"github.com/iamasit07/4-in-a-row/engine/internal/transport/console"
)

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// setup points the logger at w, loads .env files and the config, and applies
// the configured log level before anything is logged.
func setup(w io.Writer, envFiles ...string) (*config.Config, error) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen})

	envErr := godotenv.Load(envFiles...)
	cfg := config.LoadConfig()
	zerolog.SetGlobalLevel(cfg.LogLevel)
	if envErr != nil {
		log.Debug().Err(envErr).Msg("no .env file found")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log.Debug().
		Int("rows", cfg.Rows).
		Int("columns", cfg.Columns).
		Int("depth", cfg.SearchDepth).
		Str("scoring", cfg.Scoring).
		Bool("parallel", cfg.ParallelRoot).
		Msg("config-loaded")
	return cfg, nil
}

func main() {
	cfg, err := setup(os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}

	l, err := readline.NewEx(&readline.Config{
		Prompt:              "> ",
		HistoryFile:         cfg.HistoryFile,
		EOFPrompt:           "exit",
		InterruptPrompt:     "^C",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("could not start terminal")
	}
	defer l.Close()

	session := console.NewSession(l, l.Stdout(), cfg, nil)
	if err := session.Run(); err != nil {
		log.Error().Err(err).Msg("game aborted")
		l.Close()
		os.Exit(1)
	}
}
