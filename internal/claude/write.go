package claude

import (
	"fmt"
	"os"
	"path/filepath"
)

// defaultFileMode is used when the target file does not exist yet.
// ~/.claude.json holds credentials-adjacent state, so it stays private.
const defaultFileMode os.FileMode = 0600

// SaveOptions controls how a document is persisted.
type SaveOptions struct {
	// Indent is the number of spaces per nesting level (DefaultIndent if < 1).
	Indent int
	// Atomic writes to a temp file in the same directory and renames it over
	// the target. Without it the target is overwritten in place.
	Atomic bool
}

// Save serializes the document and overwrites path. The existing file mode is
// kept. No backup is made. All failures wrap ErrWrite.
func (d *Document) Save(path string, opts SaveOptions) error {
	data, err := d.Bytes(opts.Indent)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	mode := defaultFileMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	if opts.Atomic {
		err = atomicWrite(path, data, mode)
	} else {
		err = os.WriteFile(path, data, mode)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// atomicWrite writes data to a file atomically using temp file + rename.
func atomicWrite(filePath string, data []byte, mode os.FileMode) error {
	dir := filepath.Dir(filePath)
	tmpFile, err := os.CreateTemp(dir, ".claude-*.json.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on any error
	defer func() {
		if tmpPath != "" {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}

	if err := tmpFile.Chmod(mode); err != nil {
		tmpFile.Close()
		return fmt.Errorf("setting temp file mode: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, filePath); err != nil {
		return fmt.Errorf("renaming temp file to %s: %w", filePath, err)
	}

	tmpPath = ""
	return nil
}
