// Package runlog records past cleanup runs so they can be reviewed with the
// `runs` command. It stores metadata only, never the removed history entries.
package runlog

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// FileName is the name of the run log file inside the state directory.
	FileName = "runs.yaml"
	// BackupSuffix is the suffix for backup files when corruption is detected.
	BackupSuffix = ".backup"
)

// Status values for run log entries.
const (
	// StatusCompleted indicates the run finished successfully.
	StatusCompleted = "completed"
	// StatusFailed indicates the run stopped with an error.
	StatusFailed = "failed"
)

// Entry is a single cleanup run.
type Entry struct {
	// ID is a short unique identifier ("run-" + nanoid).
	ID string `yaml:"id"`
	// Timestamp is when the run started.
	Timestamp time.Time `yaml:"timestamp"`
	// File is the document that was (or would have been) cleaned.
	File string `yaml:"file"`
	// Cleared is the number of history entries removed, or counted in a dry run.
	Cleared int `yaml:"cleared"`
	// DryRun is true when nothing was written.
	DryRun bool `yaml:"dry_run,omitempty"`
	// Status is completed or failed.
	Status string `yaml:"status"`
	// ExitCode is the process exit code of the run.
	ExitCode int `yaml:"exit_code"`
	// Duration is the run duration in Go duration format.
	Duration string `yaml:"duration"`
	// Error holds the failure message for failed runs.
	Error string `yaml:"error,omitempty"`
}

// Log is the YAML document holding all entries, oldest first.
type Log struct {
	Entries []Entry `yaml:"entries"`
}

// Load reads the run log from stateDir.
// Returns an empty log if the file doesn't exist. A corrupted file is renamed
// with BackupSuffix and an empty log is returned.
func Load(stateDir string) (*Log, error) {
	logPath := filepath.Join(stateDir, FileName)

	data, err := os.ReadFile(logPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &Log{Entries: []Entry{}}, nil
		}
		return nil, fmt.Errorf("reading run log: %w", err)
	}

	var log Log
	if err := yaml.Unmarshal(data, &log); err != nil {
		if backupErr := backupCorruptedFile(logPath); backupErr != nil {
			return nil, fmt.Errorf("backing up corrupted run log: %w", backupErr)
		}
		return &Log{Entries: []Entry{}}, nil
	}

	if log.Entries == nil {
		log.Entries = []Entry{}
	}

	return &log, nil
}

// backupCorruptedFile renames a corrupted file with a .backup suffix.
func backupCorruptedFile(path string) error {
	if err := os.Rename(path, path+BackupSuffix); err != nil {
		return fmt.Errorf("renaming corrupted file to backup: %w", err)
	}
	return nil
}

// Save writes the run log to stateDir atomically, creating the directory if needed.
func Save(stateDir string, log *Log) error {
	if err := os.MkdirAll(stateDir, 0755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	data, err := yaml.Marshal(log)
	if err != nil {
		return fmt.Errorf("marshaling run log: %w", err)
	}

	logPath := filepath.Join(stateDir, FileName)
	tmpPath := logPath + ".tmp"

	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("writing temp run log: %w", err)
	}

	if err := os.Rename(tmpPath, logPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp run log: %w", err)
	}

	return nil
}

// Clear removes all entries from the run log.
func Clear(stateDir string) error {
	return Save(stateDir, &Log{Entries: []Entry{}})
}
