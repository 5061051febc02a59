package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger writing console-formatted lines without colors to w.
// The terminal is owned by the game screen, so logs never go to stdout.
func New(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

// Open creates the log file and a logger on top of it. An empty path
// disables logging. The returned closer must be called on shutdown.
func Open(path, level string) (zerolog.Logger, io.Closer, error) {
	if path == "" {
		return zerolog.Nop(), nopCloser{}, nil
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger, err := New(file, level)
	if err != nil {
		file.Close()
		return zerolog.Nop(), nil, err
	}
	logger.Info().Str("loglevel", logger.GetLevel().String()).Msg("Logging set up")
	return logger, file, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
