package log

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the process logger from config.
// Console format is meant for local development, JSON for everything else.
func NewLogger(cfg *Config) (*zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}

	switch cfg.Format {
	case FormatConsole:
		l := zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}).Level(level).With().Timestamp().Logger()
		return &l, nil
	default:
		l := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
		return &l, nil
	}
}
