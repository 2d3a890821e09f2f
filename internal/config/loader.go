package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Loader handles configuration loading from multiple sources.
type Loader struct {
	v         *viper.Viper
	envPrefix string
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	return &Loader{
		v:         viper.New(),
		envPrefix: "EISH",
	}
}

// Load loads configuration from all sources.
// Precedence (highest to lowest):
// 1. Environment variables (EISH_*)
// 2. Config file (EISH_CONFIG, or ~/.config/eish/config.yaml)
// 3. Defaults
func (l *Loader) Load() (*Config, error) {
	l.setDefaults()

	l.v.SetEnvPrefix(l.envPrefix)
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.v.AutomaticEnv()

	configFile := os.Getenv(l.envPrefix + "_CONFIG")

	if configFile != "" {
		l.v.SetConfigFile(configFile)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", configFile, err)
		}
	} else {
		l.v.SetConfigName("config")
		l.v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			l.v.AddConfigPath(filepath.Join(home, ".config", "eish"))
		}
		if err := l.v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.History.File = expandHome(cfg.History.File)
	cfg.Log.File = expandHome(cfg.Log.File)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ConfigFileUsed returns the file the settings were read from, if any.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

func (l *Loader) setDefaults() {
	l.v.SetDefault("prompt.marker", DefaultMarker)
	l.v.SetDefault("prompt.comment_prefix", DefaultCommentPrefix)
	l.v.SetDefault("prompt.greeting", DefaultGreeting)
	l.v.SetDefault("prompt.farewell", DefaultFarewell)

	l.v.SetDefault("history.file", "")
	l.v.SetDefault("history.limit", DefaultHistoryLimit)

	l.v.SetDefault("log.level", "info")
	l.v.SetDefault("log.format", "text")
	l.v.SetDefault("log.file", "")
	l.v.SetDefault("log.redact", []string{})
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
