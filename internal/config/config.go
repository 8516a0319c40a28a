package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the full editor configuration.
type Config struct {
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
	Editor  EditorConfig  `toml:"editor" yaml:"editor"`
	Script  ScriptConfig  `toml:"script" yaml:"script"`
}

// LoggingConfig configures the application logger.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" yaml:"level"`
	// File receives log output. Empty means stderr.
	File string `toml:"file" yaml:"file"`
}

// EditorConfig configures how texts are opened.
type EditorConfig struct {
	ReadOnly             bool `toml:"read_only" yaml:"read_only"`
	NormalizeLineEndings bool `toml:"normalize_line_endings" yaml:"normalize_line_endings"`
}

// ScriptConfig configures the Lua scripting surface.
type ScriptConfig struct {
	// Init is a Lua file run before any user script.
	Init string `toml:"init" yaml:"init"`
	// Timeout bounds each script run, as a Go duration string.
	Timeout string `toml:"timeout" yaml:"timeout"`
}

// Default configuration values.
const (
	DefaultLogLevel      = "info"
	DefaultScriptTimeout = 5 * time.Second
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: DefaultLogLevel},
		Script:  ScriptConfig{Timeout: DefaultScriptTimeout.String()},
	}
}

var validLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "warning": true, "error": true,
}

// Validate checks field values and normalizes the log level to lower case.
func (c *Config) Validate() error {
	level := strings.ToLower(c.Logging.Level)
	if !validLevels[level] {
		return &ValidationError{Field: "logging.level", Value: c.Logging.Level, Reason: "must be debug, info, warn or error"}
	}
	c.Logging.Level = level

	if c.Script.Timeout != "" {
		d, err := time.ParseDuration(c.Script.Timeout)
		if err != nil {
			return &ValidationError{Field: "script.timeout", Value: c.Script.Timeout, Reason: err.Error()}
		}
		if d < 0 {
			return &ValidationError{Field: "script.timeout", Value: c.Script.Timeout, Reason: "must not be negative"}
		}
	}
	return nil
}

// ScriptTimeout returns the parsed script timeout. Zero means no limit.
// Call Validate first; an unparsable value yields the default.
func (c *Config) ScriptTimeout() time.Duration {
	if c.Script.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Script.Timeout)
	if err != nil {
		return DefaultScriptTimeout
	}
	return d
}

// String returns a one-line summary for logs.
func (c *Config) String() string {
	return fmt.Sprintf("logging.level=%s editor.read_only=%t editor.normalize_line_endings=%t script.timeout=%s",
		c.Logging.Level, c.Editor.ReadOnly, c.Editor.NormalizeLineEndings, c.Script.Timeout)
}
