package config

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the root logger. Unknown levels fall back to info.
func NewLogger(cfg Config) zerolog.Logger {
	var out io.Writer = os.Stderr
	if cfg.PrettyLogs {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime}
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
