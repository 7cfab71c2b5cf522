// Package logging configures the global zerolog logger.
package logging

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Stanley42442/OptiSolveLabs/internal/config"
)

// Setup sets the global level and output format from cfg.
// An unknown level falls back to info. Pretty output is for local development; otherwise JSON with unix timestamps.
func Setup(cfg config.LogConfig, out io.Writer) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Pretty {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: out}).
			With().Timestamp().Logger()
		return
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
}
