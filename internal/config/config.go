package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/harrison/pathseek/internal/display"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory.
const FileName = ".pathseek.yaml"

// Config represents pathseek configuration options
type Config struct {
	// Workers is the number of concurrent search workers (>= 1)
	Workers int `yaml:"workers"`

	// IgnoreCase enables case-insensitive matching
	IgnoreCase bool `yaml:"ignore_case"`

	// Stagger is the delay between worker spawns
	Stagger time.Duration `yaml:"stagger"`

	// LogLevel sets the diagnostic logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir enables a per-run log file in this directory when non-empty
	LogDir string `yaml:"log_dir"`

	// Output also writes the sorted matches to this file when non-empty
	Output string `yaml:"output"`

	// Color controls colored output (auto, always, never)
	Color string `yaml:"color"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Workers:    4,
		IgnoreCase: false,
		Stagger:    5 * time.Millisecond,
		LogLevel:   "info",
		LogDir:     "",
		Output:     "",
		Color:      "auto",
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Pointer fields tell "absent" apart from an explicit zero value.
	type yamlConfig struct {
		Workers    *int    `yaml:"workers"`
		IgnoreCase *bool   `yaml:"ignore_case"`
		Stagger    *string `yaml:"stagger"`
		LogLevel   *string `yaml:"log_level"`
		LogDir     *string `yaml:"log_dir"`
		Output     *string `yaml:"output"`
		Color      *string `yaml:"color"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if yamlCfg.Workers != nil {
		cfg.Workers = *yamlCfg.Workers
	}
	if yamlCfg.IgnoreCase != nil {
		cfg.IgnoreCase = *yamlCfg.IgnoreCase
	}
	if yamlCfg.Stagger != nil {
		stagger, err := time.ParseDuration(*yamlCfg.Stagger)
		if err != nil {
			return nil, fmt.Errorf("invalid stagger format %q: %w", *yamlCfg.Stagger, err)
		}
		cfg.Stagger = stagger
	}
	if yamlCfg.LogLevel != nil {
		cfg.LogLevel = *yamlCfg.LogLevel
	}
	if yamlCfg.LogDir != nil {
		cfg.LogDir = *yamlCfg.LogDir
	}
	if yamlCfg.Output != nil {
		cfg.Output = *yamlCfg.Output
	}
	if yamlCfg.Color != nil {
		cfg.Color = *yamlCfg.Color
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .pathseek.yaml in the specified directory
// If the file doesn't exist, returns default configuration without error
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, FileName))
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(workers *int, ignoreCase *bool, logLevel *string, logDir *string, output *string, color *string) {
	if workers != nil {
		c.Workers = *workers
	}
	if ignoreCase != nil {
		c.IgnoreCase = *ignoreCase
	}
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if logDir != nil {
		c.LogDir = *logDir
	}
	if output != nil {
		c.Output = *output
	}
	if color != nil {
		c.Color = *color
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", c.Workers)
	}

	if c.Stagger < 0 {
		return fmt.Errorf("stagger must be >= 0, got %v", c.Stagger)
	}

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if _, err := display.ParseColorMode(c.Color); err != nil {
		return err
	}

	return nil
}
