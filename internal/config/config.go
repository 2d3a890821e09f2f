// Package config loads shell settings from defaults, an optional YAML file
// and EISH_* environment variables.
package config

// Config holds all shell settings.
type Config struct {
	Prompt  PromptConfig  `mapstructure:"prompt"`
	History HistoryConfig `mapstructure:"history"`
	Log     LogConfig     `mapstructure:"log"`
}

// PromptConfig configures what the shell prints around the input line.
type PromptConfig struct {
	Marker        string `mapstructure:"marker"`
	CommentPrefix string `mapstructure:"comment_prefix"`
	Greeting      string `mapstructure:"greeting"`
	Farewell      string `mapstructure:"farewell"`
}

// HistoryConfig configures the history store.
type HistoryConfig struct {
	// File is where history is persisted between runs. Empty keeps history
	// in memory only.
	File  string `mapstructure:"file"`
	Limit int    `mapstructure:"limit"`
}

// LogConfig configures diagnostic logging. Logs never go to the terminal.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
	// Redact lists extra regular expressions masked in log records.
	Redact []string `mapstructure:"redact"`
}
