package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Format selects the record encoding.
type Format string

const (
	FormatText Format = "text" // logfmt-style key=value
	FormatJSON Format = "json" // one object per line
)

// Option configures New.
type Option func(*settings)

type settings struct {
	level      slog.Leveler
	format     Format
	output     io.Writer
	attrs      []slog.Attr
	extractors []ContextExtractor
}

func WithLevel(l slog.Leveler) Option {
	return func(s *settings) { s.level = l }
}

// WithFormat selects the encoding. An unknown format panics.
func WithFormat(f Format) Option {
	if f != FormatText && f != FormatJSON {
		panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
	}
	return func(s *settings) { s.format = f }
}

func WithTextFormatter() Option { return WithFormat(FormatText) }

func WithJSONFormatter() Option { return WithFormat(FormatJSON) }

// WithOutput sets the destination. A nil writer keeps the default.
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		if w != nil {
			s.output = w
		}
	}
}

// WithAttr attaches attrs to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(s *settings) { s.attrs = append(s.attrs, attrs...) }
}

// WithContextExtractors registers extractors run on every record.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(s *settings) { s.extractors = append(s.extractors, extractors...) }
}

// New builds a logger. Without options it writes text records at info level
// to stderr.
func New(opts ...Option) *slog.Logger {
	s := settings{
		level:  slog.LevelInfo,
		format: FormatText,
		output: os.Stderr,
	}
	for _, opt := range opts {
		opt(&s)
	}

	handlerOpts := &slog.HandlerOptions{Level: s.level}
	var h slog.Handler
	switch s.format {
	case FormatJSON:
		h = slog.NewJSONHandler(s.output, handlerOpts)
	default:
		h = slog.NewTextHandler(s.output, handlerOpts)
	}
	if len(s.attrs) > 0 {
		h = h.WithAttrs(s.attrs)
	}
	return slog.New(newContextHandler(h, s.extractors))
}

// SetAsDefault installs l as the slog default logger.
func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}
