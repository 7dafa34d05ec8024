package logger

// Config holds logger configuration with environment variable support.
type Config struct {
	// Minimum level: debug, info, warn, error. Unknown values fall back to info.
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// Output encoding: text, json, dev.
	Format string `env:"LOG_FORMAT" envDefault:"text"`

	// Include source file and line in each record.
	AddSource bool `env:"LOG_ADD_SOURCE" envDefault:"false"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: string(FormatText),
	}
}
