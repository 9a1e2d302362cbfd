package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// DefaultLogLevel is used when no level option is given.
const DefaultLogLevel = "info"

// New creates a new logger instance
func New(opts ...Option) *zerolog.Logger {
	// Default config
	config := &Config{
		output:       os.Stderr,
		level:        zerolog.InfoLevel,
		excludeParts: []string{zerolog.TimestampFieldName},
		console:      true,
	}

	// Apply options
	for _, opt := range opts {
		opt.apply(config)
	}

	logger := zerolog.New(config.output).
		Level(config.level).
		With().
		Logger()

	// Pretty console output for interactive use
	if config.console {
		logger = logger.Output(zerolog.ConsoleWriter{
			Out:          config.output,
			PartsExclude: config.excludeParts,
		})
	}

	return &logger
}

// NewConsoleLogger creates the stderr console logger used by the CLI.
func NewConsoleLogger(level string) *zerolog.Logger {
	return New(
		WithLevel(level),
		WithOutput(os.Stderr),
		WithConsoleWriter(true),
	)
}
