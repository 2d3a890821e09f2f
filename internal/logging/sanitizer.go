package logging

import (
	"regexp"
)

// Sanitizer redacts credentials that show up in typed commands, such as
// curl headers, inline passwords and cloud keys.
type Sanitizer struct {
	patterns []*regexp.Regexp
	redacted string
}

func NewSanitizer() *Sanitizer {
	return &Sanitizer{
		patterns: defaultPatterns(),
		redacted: "[REDACTED]",
	}
}

func defaultPatterns() []*regexp.Regexp {
	patterns := []string{
		// GitHub tokens
		`gh[pousr]_[A-Za-z0-9]{36}`,
		// AWS Access Key
		`AKIA[0-9A-Z]{16}`,
		// Slack tokens
		`xox[baprs]-[0-9a-zA-Z-]{10,}`,
		// Bearer / basic auth headers
		`(?i)(bearer|basic)\s+[a-zA-Z0-9._~+/=-]{8,}`,
		// user:password@ in URLs
		`://[^/\s:@]+:[^/\s@]+@`,
		// key=value style secrets
		`(?i)(api[_-]?key|secret|token|passw(or)?d)["'\s:=]+[^\s"']{6,}`,
		// mysql -pSECRET style flags
		`\s-p[^\s-][^\s]{5,}`,
	}

	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(p))
	}
	return compiled
}

// Sanitize redacts sensitive information from a string.
func (s *Sanitizer) Sanitize(input string) string {
	result := input
	for _, pattern := range s.patterns {
		result = pattern.ReplaceAllString(result, s.redacted)
	}
	return result
}

// AddPattern adds a custom pattern.
func (s *Sanitizer) AddPattern(pattern string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return err
	}
	s.patterns = append(s.patterns, re)
	return nil
}
