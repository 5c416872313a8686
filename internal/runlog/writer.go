package runlog

import (
	"fmt"
	"io"
	"time"
)

// Writer appends entries to the run log and prunes old ones.
type Writer struct {
	// StateDir is the directory containing the run log.
	StateDir string
	// MaxEntries is the maximum number of entries to retain (0 = unlimited).
	MaxEntries int
	// Warnings receives non-fatal write failures. Nil discards them.
	Warnings io.Writer
}

// NewWriter creates a new run log writer.
func NewWriter(stateDir string, maxEntries int, warnings io.Writer) *Writer {
	return &Writer{
		StateDir:   stateDir,
		MaxEntries: maxEntries,
		Warnings:   warnings,
	}
}

// Record appends entry, filling in ID if empty.
// Errors are non-fatal: they are reported to Warnings and never fail the run.
func (w *Writer) Record(entry Entry) {
	if err := w.record(entry); err != nil && w.Warnings != nil {
		fmt.Fprintf(w.Warnings, "Warning: failed to update run log: %v\n", err)
	}
}

func (w *Writer) record(entry Entry) error {
	if entry.ID == "" {
		id, err := GenerateID()
		if err != nil {
			return err
		}
		entry.ID = id
	}

	log, err := Load(w.StateDir)
	if err != nil {
		return fmt.Errorf("loading run log: %w", err)
	}

	log.Entries = append(log.Entries, entry)

	// Prune oldest entries if over limit
	if w.MaxEntries > 0 && len(log.Entries) > w.MaxEntries {
		excess := len(log.Entries) - w.MaxEntries
		log.Entries = log.Entries[excess:]
	}

	if err := Save(w.StateDir, log); err != nil {
		return fmt.Errorf("saving run log: %w", err)
	}

	return nil
}

// NewEntry builds an entry for a run that started at start and ended now.
// A non-nil runErr marks the entry failed.
func NewEntry(start time.Time, file string, cleared int, dryRun bool, exitCode int, runErr error) Entry {
	entry := Entry{
		Timestamp: start,
		File:      file,
		Cleared:   cleared,
		DryRun:    dryRun,
		Status:    StatusCompleted,
		ExitCode:  exitCode,
		Duration:  time.Since(start).Round(time.Millisecond).String(),
	}
	if runErr != nil {
		entry.Status = StatusFailed
		entry.Error = runErr.Error()
	}
	return entry
}
