// Package config loads assessor settings from an optional YAML file and
// the environment. A missing file is not an error: defaults apply.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/HendryAvila/assessor/internal/storage"
)

// Environment variables that override file values.
const (
	EnvDataDir  = "ASSESSOR_DATA_DIR"
	EnvBackend  = "ASSESSOR_BACKEND"
	EnvLogLevel = "ASSESSOR_LOG_LEVEL"
)

// DefaultFileName is the config file looked up inside the data dir when
// no --config flag is given.
const DefaultFileName = "config.yaml"

// Config holds runtime settings.
type Config struct {
	// DataDir is where assessment state is persisted.
	DataDir string `yaml:"data_dir"`

	// Backend selects the storage implementation (file, sqlite, memory).
	Backend storage.Backend `yaml:"backend"`

	// ExportDir is where reports are written. Defaults to <data_dir>/reports.
	ExportDir string `yaml:"export_dir"`

	// LogLevel is one of debug, info, warn (or warning), error.
	LogLevel string `yaml:"log_level"`

	// AutoExport writes the JSON report to ExportDir whenever an
	// assessment completes.
	AutoExport bool `yaml:"auto_export"`
}

// DefaultDataDir returns ~/.assessor.
func DefaultDataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".assessor")
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		DataDir:  DefaultDataDir(),
		Backend:  storage.BackendFile,
		LogLevel: "info",
	}
}

// DefaultPath returns the config file path used when none is given.
func DefaultPath() string {
	return filepath.Join(DefaultDataDir(), DefaultFileName)
}

// Load reads path (if it exists), merges it over the defaults and applies
// environment overrides. An empty path means DefaultPath().
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// No file: defaults only.
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		var file Config
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
		cfg.merge(&file)
	}

	cfg.applyEnv()
	if cfg.ExportDir == "" {
		cfg.ExportDir = filepath.Join(cfg.DataDir, "reports")
	}
	cfg.DataDir = expandHome(cfg.DataDir)
	cfg.ExportDir = expandHome(cfg.ExportDir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// merge copies non-zero values from other.
func (c *Config) merge(other *Config) {
	if other.DataDir != "" {
		c.DataDir = other.DataDir
	}
	if other.Backend != "" {
		c.Backend = other.Backend
	}
	if other.ExportDir != "" {
		c.ExportDir = other.ExportDir
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.AutoExport {
		c.AutoExport = true
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv(EnvBackend); v != "" {
		c.Backend = storage.Backend(strings.ToLower(v))
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
}

var validLogLevels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("data_dir must not be empty")
	}
	if err := storage.ValidateBackend(c.Backend); err != nil {
		return err
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q: must be one of: debug, info, warn, error", c.LogLevel)
	}
	return nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
