package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileLoader reads Config from a YAML file on disk.
type FileLoader struct {
	path string
}

// NewFileLoader returns a Loader reading from path. An empty path selects
// ~/.config/netscope/config.yaml.
func NewFileLoader(path string) (*FileLoader, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, ".config", "netscope", "config.yaml")
	}
	return &FileLoader{path: path}, nil
}

// ConfigPath returns the absolute path to the configuration file.
func (l *FileLoader) ConfigPath() string { return l.path }

// Load reads and parses the configuration file. A missing file is not an
// error: it yields an empty Config so every default falls through to the
// flag layer.
func (l *FileLoader) Load() (*Config, error) {
	data, err := os.ReadFile(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", l.path, err)
	}

	switch cfg.Diagram.Format {
	case "", "png", "svg":
	default:
		return nil, fmt.Errorf("unsupported diagram format %q", cfg.Diagram.Format)
	}
	if cfg.Diagram.MaxItems < 0 {
		return nil, errors.New("diagram max_items must not be negative")
	}

	return &cfg, nil
}
