// Package config loads claude-clear-history settings from defaults, the
// global config file, an optional local config file and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables that override config keys.
// Example: CLAUDE_CLEAR_HISTORY_ATOMIC_WRITE=true sets atomic_write.
const EnvPrefix = "CLAUDE_CLEAR_HISTORY_"

// AppDir is the per-user directory holding the global config and state.
const AppDir = ".claude-clear-history"

// Configuration represents the claude-clear-history configuration
type Configuration struct {
	TargetFile       string `koanf:"target_file" validate:"required"`
	Indent           int    `koanf:"indent" validate:"min=1,max=8"`
	AtomicWrite      bool   `koanf:"atomic_write"`
	ShowProgress     bool   `koanf:"show_progress"` // Spinner while loading/writing large documents
	RunLog           bool   `koanf:"run_log"`
	RunLogMaxEntries int    `koanf:"run_log_max_entries" validate:"min=0,max=10000"`
	StateDir         string `koanf:"state_dir" validate:"required"`
}

// GlobalConfigPath returns ~/.claude-clear-history/config.json.
func GlobalConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(homeDir, AppDir, "config.json"), nil
}

// Load loads configuration from global, local, and environment sources
// Priority: Environment variables > Local config > Global config > Defaults
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to apply default %s: %w", key, err)
		}
	}

	if globalPath, err := GlobalConfigPath(); err == nil {
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err != nil {
			return nil, fmt.Errorf("failed to load local config: %w", err)
		}
		if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load local config: %w", err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment overrides: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.TargetFile = expandHomePath(cfg.TargetFile)
	cfg.StateDir = expandHomePath(cfg.StateDir)

	return &cfg, nil
}

// envTransform converts environment variable names to config keys
// Example: CLAUDE_CLEAR_HISTORY_RUN_LOG_MAX_ENTRIES -> run_log_max_entries
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return path
}
