package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Log output encodings.
const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

// LoggerConfig holds zap logger settings.
type LoggerConfig struct {
	// Level is any zap level name (debug, info, warn, error, dpanic, panic, fatal).
	Level string
	// Format is json or console.
	Format string
	// Output is stdout, stderr or an absolute file path.
	Output string
}

// LoadLoggerConfigFromEnv loads logger settings from LOG_* variables.
func LoadLoggerConfigFromEnv() LoggerConfig {
	return LoggerConfig{
		Level:  GetEnv("LOG_LEVEL", "info"),
		Format: GetEnv("LOG_FORMAT", LogFormatJSON),
		Output: GetEnv("LOG_OUTPUT", "stdout"),
	}
}

// Validate rejects levels zap does not know, unknown formats and relative
// output paths.
func (c LoggerConfig) Validate() error {
	if _, err := zapcore.ParseLevel(strings.ToLower(c.Level)); err != nil {
		return fmt.Errorf("invalid log level: %s", c.Level)
	}
	if c.Format != LogFormatJSON && c.Format != LogFormatConsole {
		return fmt.Errorf("invalid log format: %s (must be: %s, %s)", c.Format, LogFormatJSON, LogFormatConsole)
	}
	switch c.Output {
	case "", "stdout", "stderr":
	default:
		if !filepath.IsAbs(c.Output) {
			return fmt.Errorf("LOG_OUTPUT must be stdout, stderr or an absolute path, got %s", c.Output)
		}
	}
	return nil
}

// Sink maps Output to a zap output path. Anything that is neither stderr nor
// an absolute path goes to stdout.
func (c LoggerConfig) Sink() string {
	switch {
	case c.Output == "stderr":
		return "stderr"
	case filepath.IsAbs(c.Output):
		return c.Output
	default:
		return "stdout"
	}
}

// IsProduction reports whether the production zap preset applies.
func (c LoggerConfig) IsProduction() bool {
	return c.Format == LogFormatJSON && !strings.EqualFold(c.Level, "debug")
}
