package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Config holds the configuration for building a logger
type Config struct {
	Level  string
	Output string // "stdout" or "stderr"
	Pretty bool   // Enable pretty logging for development
}

// New builds a zerolog.Logger from the given config. The logger is a plain
// value handed to each component constructor; there is no package-level
// instance to initialize or share.
func New(cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var output io.Writer
	switch cfg.Output {
	case "stdout":
		output = os.Stdout
	default:
		output = os.Stderr
	}

	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: "2006-01-02 15:04:05",
		}
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}
