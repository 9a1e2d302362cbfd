package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// Config holds logger construction settings.
type Config struct {
	output       io.Writer
	level        zerolog.Level
	excludeParts []string
	console      bool
}

// Option configures a logger being constructed by New.
type Option interface {
	apply(*Config)
}

type optionFunc func(*Config)

func (f optionFunc) apply(c *Config) { f(c) }

// WithOutput sets the logger output writer.
func WithOutput(w io.Writer) Option {
	return optionFunc(func(c *Config) {
		c.output = w
	})
}

// WithLevel sets the log level by name. Unknown names fall back to info.
func WithLevel(level string) Option {
	return optionFunc(func(c *Config) {
		parsed, err := zerolog.ParseLevel(level)
		if err != nil {
			parsed = zerolog.InfoLevel
		}
		c.level = parsed
	})
}

// WithConsoleWriter toggles the pretty console writer. Disable for
// machine-readable JSON output or in tests.
func WithConsoleWriter(enabled bool) Option {
	return optionFunc(func(c *Config) {
		c.console = enabled
	})
}
