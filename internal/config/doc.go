// Package config loads editor configuration.
//
// Configuration is resolved in three layers, later layers winning:
//
//  1. Built-in defaults (Default)
//  2. A TOML or YAML file, chosen by extension (.toml, .yaml, .yml)
//  3. ANCHORAGE_* environment variables
//
// A missing file is not an error; defaults and environment still apply.
//
// Example TOML:
//
//	[logging]
//	level = "debug"
//	file = "/tmp/anchorage.log"
//
//	[editor]
//	read_only = false
//	normalize_line_endings = true
//
//	[script]
//	init = "~/.config/anchorage/init.lua"
//	timeout = "5s"
package config
