// Package config handles fmtsize paths and the YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/d2verb/fmtsize"
	"gopkg.in/yaml.v3"
)

// DefaultFormat is the format used when none is configured.
const DefaultFormat = "conventional"

// Paths holds common paths used by fmtsize.
type Paths struct {
	Home   string
	Config string
	Logs   string
	Log    string
}

// GetPaths returns the paths for the current user.
func GetPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return PathsIn(filepath.Join(home, ".fmtsize")), nil
}

// PathsIn returns the paths rooted at dir.
func PathsIn(dir string) *Paths {
	logsDir := filepath.Join(dir, "logs")
	return &Paths{
		Home:   dir,
		Config: filepath.Join(dir, "config.yaml"),
		Logs:   logsDir,
		Log:    filepath.Join(logsDir, "fmtsize.log"),
	}
}

// EnsureDirectories creates the required directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.Home, p.Logs} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}

// LogSettings controls log file rotation.
type LogSettings struct {
	MaxSizeMB  int  `yaml:"max_size_mb"`
	MaxBackups int  `yaml:"max_backups"`
	MaxAgeDays int  `yaml:"max_age_days"`
	Compress   bool `yaml:"compress"`
}

// Config is the contents of config.yaml.
type Config struct {
	Format string      `yaml:"format"`
	Color  bool        `yaml:"color"`
	Log    LogSettings `yaml:"log"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Format: DefaultFormat,
		Color:  true,
		Log: LogSettings{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}

// Load reads the config file at path. Fields missing from the file keep
// their default values; a missing file yields DefaultConfig.
// The format name is not resolved here so a flag can still replace it;
// use SizeFormat or Validate for that.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &ParseError{File: path, Err: err}
	}
	if err := cfg.validateLimits(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate checks that the configured format exists and log limits are sane.
func (c *Config) Validate() error {
	if _, err := fmtsize.Lookup(c.Format); err != nil {
		return err
	}
	return c.validateLimits()
}

func (c *Config) validateLimits() error {
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return fmt.Errorf("log limits must not be negative")
	}
	return nil
}

// SizeFormat returns the configured size format.
func (c *Config) SizeFormat() (fmtsize.Format, error) {
	return fmtsize.Lookup(c.Format)
}

// ParseError indicates the config file is not valid YAML.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
