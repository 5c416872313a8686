package claude

import (
	"errors"
	"fmt"
)

// Sentinel errors for the document lifecycle. Callers match them with errors.Is.
var (
	// ErrNotFound is returned when the document path does not resolve to a file.
	ErrNotFound = errors.New("file not found")
	// ErrInvalidStructure is returned when the document is valid JSON but not
	// shaped like a Claude configuration document.
	ErrInvalidStructure = errors.New("invalid structure")
	// ErrParse is returned when the document is not well-formed JSON.
	ErrParse = errors.New("malformed JSON")
	// ErrWrite is returned when the document cannot be serialized or written.
	ErrWrite = errors.New("write failed")
)

// MissingProjectsDetail describes a document without a usable projects object.
const MissingProjectsDetail = "missing 'projects' field"

// StructureError describes a structural problem in an otherwise valid document.
type StructureError struct {
	Detail string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidStructure, e.Detail)
}

// Unwrap lets errors.Is match ErrInvalidStructure.
func (e *StructureError) Unwrap() error {
	return ErrInvalidStructure
}

func structureErrorf(format string, args ...interface{}) error {
	return &StructureError{Detail: fmt.Sprintf(format, args...)}
}
