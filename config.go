package weblog

import (
	"io"

	"github.com/fatih/color"
)

// Config controls a Service. The zero value is usable: console output only,
// INFO threshold, "[level][time] " prefix. Fields are read once during
// Initialize and must not be mutated afterwards.
type Config struct {
	// Output enables the daily plain-text log file. It is forced off for
	// the life of the instance when today's file cannot be opened during
	// Initialize.
	Output bool

	// OutputDir holds the daily log files. Created if missing.
	OutputDir string

	// OutputLevel is the minimum level written to the file, one of
	// DEBUG, INFO, WARNING, ERROR, CRITICAL. Console output is not
	// filtered by this threshold.
	OutputLevel string `validate:"omitempty,oneof=DEBUG INFO WARNING ERROR CRITICAL debug info warning error critical"`

	// PrefixFormat is rendered in front of every line. The first
	// occurrence of "[level]" and of "[time]" is substituted; anything
	// else is kept verbatim.
	PrefixFormat string

	// MessageFormat builds the middleware log line body. Defaults to
	// "METHOD URL - STATUS - COSTms - IP".
	MessageFormat MessageFormatter

	// Development lifts the DEBUG console suppression. DefaultConfig
	// derives it from APP_ENV/GO_ENV.
	Development bool

	// Console receives rendered console lines. Defaults to color.Output.
	Console io.Writer

	// OnError observes file write and rotation failures. Nil means
	// best-effort silent drop. Never called for console output.
	OnError func(error)

	// Per-day caps handed to the underlying lumberjack writer. Zero
	// values keep lumberjack's defaults.
	FileMaxSizeMB   int  `validate:"gte=0"`
	FileMaxBackups  int  `validate:"gte=0"`
	FileMaxAgeDays  int  `validate:"gte=0"`
	FileCompression bool
}

// DefaultConfig returns the stock configuration with Development resolved
// from the process environment.
func DefaultConfig() Config {
	return Config{
		Output:       false,
		OutputDir:    defaultOutputDir,
		OutputLevel:  defaultOutputLevel,
		PrefixFormat: defaultPrefixFormat,
		Development:  developmentMode(),
	}
}

func (c *Config) applyDefaults() {
	if c.OutputDir == emptyString {
		c.OutputDir = defaultOutputDir
	}
	if c.OutputLevel == emptyString {
		c.OutputLevel = defaultOutputLevel
	}
	if c.PrefixFormat == emptyString {
		c.PrefixFormat = defaultPrefixFormat
	}
	if c.MessageFormat == nil {
		c.MessageFormat = defaultMessageFormat
	}
	if c.Console == nil {
		c.Console = color.Output
	}
}
