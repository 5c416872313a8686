package config

import "github.com/ariel-frischer/claude-clear-history/internal/claude"

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"target_file":         "~/" + claude.DefaultFileName,
		"indent":              claude.DefaultIndent,
		"atomic_write":        false,
		"show_progress":       true,
		"run_log":             true,
		"run_log_max_entries": 100,
		"state_dir":           "~/" + AppDir + "/state",
	}
}
