// Package logging builds the process logger: an append-only JSON log file
// plus human-readable console output, both fed by one zerolog.Logger that the
// entry point hands to every component.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// File permissions
const (
	DefaultFilePermissions = 0644
)

// Config captures options for building the logger.
type Config struct {
	Level   string    // "debug", "info", ...; defaults to info
	File    string    // append-only log file; empty disables file output
	Console io.Writer // console writer; defaults to os.Stderr
	NoColor bool
}

// New returns a logger writing to the configured file and console. The
// returned closer releases the log file and must be called on shutdown.
func New(cfg Config) (zerolog.Logger, io.Closer, error) {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		parsed, err := zerolog.ParseLevel(cfg.Level)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}

	console := cfg.Console
	if console == nil {
		console = os.Stderr
	}

	writers := []io.Writer{
		zerolog.ConsoleWriter{Out: console, TimeFormat: time.DateTime, NoColor: cfg.NoColor},
	}

	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DefaultFilePermissions)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
		}
		writers = append(writers, f)
		closer = f
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()

	return logger, closer, nil
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
