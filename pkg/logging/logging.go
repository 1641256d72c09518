// Package logging configures structured logging for TipTop binaries.
//
// Usage:
//
//	logging.Setup()                                  // from LOG_LEVEL / LOG_FORMAT env
//	logging.SetupWithOptions(logging.Options{...})   // explicit override
//
// Environment variables:
//
//	LOG_LEVEL: debug, info, warn, error (default: info)
//	LOG_FORMAT: text (colored, default) or json
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Options controls the handler installed as the slog default.
type Options struct {
	Level slog.Level
	// JSON selects slog's JSON handler instead of tint.
	JSON bool
	// Writer defaults to os.Stderr.
	Writer io.Writer
	// NoColor disables ANSI colors in text output.
	NoColor bool
}

// Setup configures logging from the LOG_LEVEL and LOG_FORMAT env vars.
func Setup() {
	SetupWithOptions(Options{
		Level: ParseLevel(os.Getenv("LOG_LEVEL")),
		JSON:  strings.EqualFold(os.Getenv("LOG_FORMAT"), "json"),
	})
}

// SetupWithLevel configures colored logging at the given level.
func SetupWithLevel(level slog.Level) {
	SetupWithOptions(Options{Level: level})
}

// SetupWithOptions installs a handler built from opts as the slog default
// and returns the logger.
func SetupWithOptions(opts Options) *slog.Logger {
	logger := slog.New(NewHandler(opts))
	slog.SetDefault(logger)
	return logger
}

// NewHandler builds the handler described by opts.
func NewHandler(opts Options) slog.Handler {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	if opts.JSON {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     opts.Level,
			AddSource: true,
		})
	}
	return tint.NewHandler(w, &tint.Options{
		Level:      opts.Level,
		TimeFormat: time.Kitchen,
		AddSource:  true,
		NoColor:    opts.NoColor,
	})
}

// ParseLevel maps a level name to a slog.Level, defaulting to INFO.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
