package config

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// ValidationError describes one invalid setting.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s (got %v)", e.Field, e.Message, e.Value)
}

// Validate checks the loaded configuration and reports every problem found.
func Validate(cfg *Config) error {
	var errs []error

	if strings.TrimSpace(cfg.Prompt.Marker) == "" {
		errs = append(errs, ValidationError{"prompt.marker", cfg.Prompt.Marker, "must not be blank"})
	}
	if strings.ContainsAny(cfg.Prompt.Marker, "\r\n") {
		errs = append(errs, ValidationError{"prompt.marker", cfg.Prompt.Marker, "must be a single line"})
	}
	if strings.ContainsAny(cfg.Prompt.CommentPrefix, " \t") {
		errs = append(errs, ValidationError{"prompt.comment_prefix", cfg.Prompt.CommentPrefix, "must not contain whitespace"})
	}
	if cfg.History.Limit < 1 {
		errs = append(errs, ValidationError{"history.limit", cfg.History.Limit, "must be at least 1"})
	}
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, strings.ToLower(cfg.Log.Level)) {
		errs = append(errs, ValidationError{"log.level", cfg.Log.Level, "must be one of debug, info, warn, error"})
	}
	if !slices.Contains([]string{"text", "json"}, strings.ToLower(cfg.Log.Format)) {
		errs = append(errs, ValidationError{"log.format", cfg.Log.Format, "must be text or json"})
	}

	for _, p := range cfg.Log.Redact {
		if _, err := regexp.Compile(p); err != nil {
			errs = append(errs, ValidationError{"log.redact", p, "must be a valid regular expression"})
		}
	}

	return errors.Join(errs...)
}
