package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FileSystem abstracts file reads so tests can use in-memory files.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
}

// OSFS reads from the real file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Loader resolves a Config from defaults, a file and the environment.
type Loader struct {
	FS        FileSystem
	LookupEnv func(string) (string, bool)
}

// NewLoader returns a loader over the real file system and environment.
func NewLoader() *Loader {
	return &Loader{FS: OSFS{}, LookupEnv: os.LookupEnv}
}

// Load resolves configuration using the real file system and environment.
func Load(path string) (*Config, error) {
	return NewLoader().Load(path)
}

// Load resolves configuration from path. An empty path or a missing file
// leaves the defaults in place.
func (l *Loader) Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := l.decodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if l.LookupEnv != nil {
		if err := ApplyEnv(cfg, l.LookupEnv); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l *Loader) decodeFile(path string, cfg *Config) error {
	data, err := l.FS.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("%s: %w %q", path, ErrUnknownFormat, ext)
	}
	if err != nil {
		return &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	return nil
}
