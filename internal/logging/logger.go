package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Logger wraps slog.Logger with redaction of secrets typed on the command line.
type Logger struct {
	*slog.Logger
	sanitizer *Sanitizer
}

// Config configures the logger.
type Config struct {
	Level  string
	Format string // text, json
	Output io.Writer
}

// DefaultConfig discards everything: the terminal is never a log sink.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "text",
		Output: io.Discard,
	}
}

// New creates a new logger.
func New(cfg Config) *Logger {
	if cfg.Output == nil {
		cfg.Output = io.Discard
	}

	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	sanitizer := NewSanitizer()

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(cfg.Output, opts)
	default:
		handler = slog.NewTextHandler(cfg.Output, opts)
	}

	return &Logger{
		Logger:    slog.New(NewSanitizingHandler(handler, sanitizer)),
		sanitizer: sanitizer,
	}
}

// NewNop creates a no-op logger for testing.
func NewNop() *Logger {
	return &Logger{
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		sanitizer: NewSanitizer(),
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithSession returns a logger tagged with the shell session id.
func (l *Logger) WithSession(id string) *Logger {
	return &Logger{
		Logger:    l.Logger.With("session", id),
		sanitizer: l.sanitizer,
	}
}

// With returns a logger with custom fields.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		Logger:    l.Logger.With(args...),
		sanitizer: l.sanitizer,
	}
}

// Redact adds patterns whose matches are replaced in every record.
func (l *Logger) Redact(patterns ...string) error {
	for _, p := range patterns {
		if err := l.sanitizer.AddPattern(p); err != nil {
			return fmt.Errorf("log redact pattern %q: %w", p, err)
		}
	}
	return nil
}
