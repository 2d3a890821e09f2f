package config

const (
	DefaultMarker        = "~>"
	DefaultCommentPrefix = "//"
	DefaultGreeting      = "Welcome to EISH"
	DefaultFarewell      = "See you later, Bye!"
	DefaultHistoryLimit  = 1000
)

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	return &Config{
		Prompt: PromptConfig{
			Marker:        DefaultMarker,
			CommentPrefix: DefaultCommentPrefix,
			Greeting:      DefaultGreeting,
			Farewell:      DefaultFarewell,
		},
		History: HistoryConfig{Limit: DefaultHistoryLimit},
		Log:     LogConfig{Level: "info", Format: "text"},
	}
}
