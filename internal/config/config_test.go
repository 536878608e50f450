package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
	if cfg.IgnoreCase {
		t.Errorf("IgnoreCase = %v, want false", cfg.IgnoreCase)
	}
	if cfg.Stagger != 5*time.Millisecond {
		t.Errorf("Stagger = %v, want 5ms", cfg.Stagger)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogDir != "" {
		t.Errorf("LogDir = %q, want empty", cfg.LogDir)
	}
	if cfg.Color != "auto" {
		t.Errorf("Color = %q, want %q", cfg.Color, "auto")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

// TestLoadConfigValidFile tests loading a valid YAML config file
func TestLoadConfigValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `workers: 8
ignore_case: true
stagger: 10ms
log_level: debug
log_dir: /tmp/pathseek-logs
output: matches.txt
color: never
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Workers != 8 {
		t.Errorf("Workers = %d, want 8", cfg.Workers)
	}
	if !cfg.IgnoreCase {
		t.Errorf("IgnoreCase = false, want true")
	}
	if cfg.Stagger != 10*time.Millisecond {
		t.Errorf("Stagger = %v, want 10ms", cfg.Stagger)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.LogDir != "/tmp/pathseek-logs" {
		t.Errorf("LogDir = %q, want %q", cfg.LogDir, "/tmp/pathseek-logs")
	}
	if cfg.Output != "matches.txt" {
		t.Errorf("Output = %q, want %q", cfg.Output, "matches.txt")
	}
	if cfg.Color != "never" {
		t.Errorf("Color = %q, want %q", cfg.Color, "never")
	}
}

// TestLoadConfigMissingFile returns defaults when no file exists
func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("LoadConfig() = %+v, want defaults %+v", cfg, DefaultConfig())
	}
}

// TestLoadConfigPartialFile keeps defaults for keys that are absent
func TestLoadConfigPartialFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("workers: 1\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	want := DefaultConfig()
	want.Workers = 1
	if *cfg != *want {
		t.Errorf("LoadConfig() = %+v, want %+v", cfg, want)
	}
}

// TestLoadConfigExplicitZero keeps an explicit zero instead of the default
func TestLoadConfigExplicitZero(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("stagger: 0s\nworkers: 0\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Stagger != 0 {
		t.Errorf("Stagger = %v, want 0", cfg.Stagger)
	}
	if cfg.Workers != 0 {
		t.Errorf("Workers = %d, want 0", cfg.Workers)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() expected error for workers: 0")
	}
}

// TestLoadConfigErrors covers malformed files
func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "workers: [1, 2\n"},
		{"wrong type", "workers: many\n"},
		{"bad stagger", "stagger: soon\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}
			if _, err := LoadConfig(configPath); err == nil {
				t.Errorf("LoadConfig() expected error for %q", tt.content)
			}
		})
	}
}

// TestLoadConfigFromDir reads .pathseek.yaml from a directory
func TestLoadConfigFromDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("color: always\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfigFromDir(dir)
	if err != nil {
		t.Fatalf("LoadConfigFromDir() error = %v", err)
	}
	if cfg.Color != "always" {
		t.Errorf("Color = %q, want %q", cfg.Color, "always")
	}
}

// TestMergeWithFlags verifies non-nil flags override the file
func TestMergeWithFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Workers = 8
	cfg.LogLevel = "warn"
	cfg.Output = "from-file.txt"

	workers := 2
	ignoreCase := true
	logLevel := "debug"
	color := "never"
	cfg.MergeWithFlags(&workers, &ignoreCase, &logLevel, nil, nil, &color)

	if cfg.Workers != 2 {
		t.Errorf("Workers = %d, want 2", cfg.Workers)
	}
	if !cfg.IgnoreCase {
		t.Error("IgnoreCase = false, want true")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.Color != "never" {
		t.Errorf("Color = %q, want %q", cfg.Color, "never")
	}
	// Untouched by nil flags.
	if cfg.Output != "from-file.txt" {
		t.Errorf("Output = %q, want %q", cfg.Output, "from-file.txt")
	}
	if cfg.LogDir != "" {
		t.Errorf("LogDir = %q, want empty", cfg.LogDir)
	}
}

// TestMergeWithFlagsZeroValues verifies explicit zero-value flags still override
func TestMergeWithFlagsZeroValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IgnoreCase = true
	cfg.Output = "from-file.txt"

	ignoreCase := false
	output := ""
	cfg.MergeWithFlags(nil, &ignoreCase, nil, nil, &output, nil)

	if cfg.IgnoreCase {
		t.Error("IgnoreCase = true, want false")
	}
	if cfg.Output != "" {
		t.Errorf("Output = %q, want empty", cfg.Output)
	}
}

// TestConfigValidate tests validation of config values
func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"single worker", func(c *Config) { c.Workers = 1 }, false},
		{"zero workers", func(c *Config) { c.Workers = 0 }, true},
		{"negative workers", func(c *Config) { c.Workers = -3 }, true},
		{"negative stagger", func(c *Config) { c.Stagger = -time.Millisecond }, true},
		{"zero stagger", func(c *Config) { c.Stagger = 0 }, false},
		{"trace level", func(c *Config) { c.LogLevel = "trace" }, false},
		{"unknown level", func(c *Config) { c.LogLevel = "chatty" }, true},
		{"always color", func(c *Config) { c.Color = "always" }, false},
		{"color is case-insensitive", func(c *Config) { c.Color = "NEVER" }, false},
		{"unknown color", func(c *Config) { c.Color = "rainbow" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestLoadConfigPermissionDenied tests handling of permission errors
func TestLoadConfigPermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores file permissions")
	}

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("workers: 5"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	if err := os.Chmod(configPath, 0000); err != nil {
		t.Fatalf("failed to chmod config: %v", err)
	}
	defer os.Chmod(configPath, 0644)

	if _, err := LoadConfig(configPath); err == nil {
		t.Error("LoadConfig() expected error for unreadable file, got nil")
	}
}
