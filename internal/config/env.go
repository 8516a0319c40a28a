package config

import (
	"strconv"
)

// EnvPrefix prefixes every environment variable the loader reads.
const EnvPrefix = "ANCHORAGE_"

// envString and envBool map environment variables to config fields.
var (
	envString = map[string]func(*Config) *string{
		EnvPrefix + "LOG_LEVEL":      func(c *Config) *string { return &c.Logging.Level },
		EnvPrefix + "LOG_FILE":       func(c *Config) *string { return &c.Logging.File },
		EnvPrefix + "SCRIPT_INIT":    func(c *Config) *string { return &c.Script.Init },
		EnvPrefix + "SCRIPT_TIMEOUT": func(c *Config) *string { return &c.Script.Timeout },
	}
	envBool = map[string]func(*Config) *bool{
		EnvPrefix + "READ_ONLY":              func(c *Config) *bool { return &c.Editor.ReadOnly },
		EnvPrefix + "NORMALIZE_LINE_ENDINGS": func(c *Config) *bool { return &c.Editor.NormalizeLineEndings },
	}
)

// ApplyEnv overlays ANCHORAGE_* variables found by lookup onto cfg.
// Empty values are treated as set.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	for name, field := range envString {
		if val, ok := lookup(name); ok {
			*field(cfg) = val
		}
	}
	for name, field := range envBool {
		val, ok := lookup(name)
		if !ok {
			continue
		}
		b, err := parseBool(val)
		if err != nil {
			return &ValidationError{Field: name, Value: val, Reason: "not a boolean"}
		}
		*field(cfg) = b
	}
	return nil
}

// parseBool accepts strconv forms plus yes/no and on/off.
func parseBool(s string) (bool, error) {
	switch s {
	case "yes", "on", "YES", "ON":
		return true, nil
	case "no", "off", "NO", "OFF", "":
		return false, nil
	}
	return strconv.ParseBool(s)
}
