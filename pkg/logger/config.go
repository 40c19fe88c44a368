package logger

import (
	"fmt"
	"log/slog"
	"strings"
)

// Config holds the logger settings read from the environment.
type Config struct {
	Level  string `env:"VALID_LOG_LEVEL" envDefault:"info"`
	Format string `env:"VALID_LOG_FORMAT" envDefault:"text"`
}

// ParseLevel maps debug, info, warn (or warning) and error to slog levels.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", level)
	}
}

// NewFromConfig builds a logger from cfg. Extra options are applied after the
// configured level and format, so they can override them.
func NewFromConfig(cfg Config, opts ...Option) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	format := Format(strings.ToLower(cfg.Format))
	switch format {
	case FormatJSON, FormatText:
	case "":
		format = FormatText
	default:
		return nil, fmt.Errorf("invalid log format %q: must be %q or %q", cfg.Format, FormatJSON, FormatText)
	}

	base := []Option{WithLevel(level), WithFormat(format)}
	return New(append(base, opts...)...), nil
}
