// Package config manages the YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/pocketcube"
)

// Config is the persistent application configuration.
type Config struct {
	DBPath      string        `yaml:"db_path,omitempty"`
	LogLevel    string        `yaml:"log_level"`
	Parallel    bool          `yaml:"parallel"`
	MaxDepth    int           `yaml:"max_depth"`
	Timeout     time.Duration `yaml:"timeout"`
	ScrambleLen int           `yaml:"scramble_length"`
	LastSolveID string        `yaml:"last_solve_id,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		LogLevel:    "info",
		Parallel:    true,
		MaxDepth:    pocketcube.DefaultMaxDepth,
		Timeout:     time.Minute,
		ScrambleLen: 15,
	}
}

// Validate checks field values.
func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	if c.ScrambleLen < 0 {
		return fmt.Errorf("scramble_length must not be negative, got %d", c.ScrambleLen)
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// File manages the configuration file.
type File struct {
	path   string
	config Config
}

// DefaultPath returns the default configuration file path.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(home, ".pocketcube")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(dir, "config.yaml"), nil
}

// NewFile creates a configuration file manager. A missing file yields the
// defaults.
func NewFile(path string) (*File, error) {
	f := &File{path: path, config: Default()}

	if err := f.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	return f, nil
}

// NewDefaultFile creates a configuration file manager with the default path.
func NewDefaultFile() (*File, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return NewFile(path)
}

// Load loads the configuration from disk. Fields absent from the file keep
// their current values.
func (f *File) Load() error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return err
	}

	cfg := f.config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", f.path, err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", f.path, err)
	}

	f.config = cfg
	return nil
}

// Save saves the configuration to disk.
func (f *File) Save() error {
	data, err := yaml.Marshal(f.config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(f.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Path returns the configuration file path.
func (f *File) Path() string {
	return f.path
}

// Config returns the current configuration.
func (f *File) Config() Config {
	return f.config
}

// Set replaces the configuration after validating it.
func (f *File) Set(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	f.config = cfg
	return nil
}

// SetLastSolve records the most recent solve ID and saves.
func (f *File) SetLastSolve(solveID string) error {
	f.config.LastSolveID = solveID
	return f.Save()
}
