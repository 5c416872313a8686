// Package errors provides categorized CLI errors with remediation guidance
// and colored terminal formatting.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCategory classifies a CLI error. The category decides the header shown
// to the user and the process exit code.
type ErrorCategory int

const (
	// Argument indicates invalid command-line arguments or flags.
	Argument ErrorCategory = iota
	// Configuration indicates an invalid or unreadable configuration.
	Configuration
	// Prerequisite indicates a missing or invalid input the command depends on.
	Prerequisite
	// Runtime indicates a failure while executing the command.
	Runtime
)

// String returns the header used when formatting the error.
func (c ErrorCategory) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Configuration:
		return "Configuration Error"
	case Prerequisite:
		return "Prerequisite Error"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// CLIError is an error meant to be shown to the user.
type CLIError struct {
	Category    ErrorCategory
	Message     string
	Usage       string
	Remediation []string
	Cause       error
}

func (e *CLIError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause so errors.Is and errors.As see through it.
func (e *CLIError) Unwrap() error {
	return e.Cause
}

// NewArgumentErrorWithUsage creates an Argument error that shows command usage.
func NewArgumentErrorWithUsage(message, usage string, remediation ...string) *CLIError {
	return &CLIError{Category: Argument, Message: message, Usage: usage, Remediation: remediation}
}

// NewConfigError creates a Configuration error.
func NewConfigError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Configuration, Message: message, Remediation: remediation}
}

// NewPrerequisiteError creates a Prerequisite error.
func NewPrerequisiteError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Prerequisite, Message: message, Remediation: remediation}
}

// NewRuntimeError creates a Runtime error.
func NewRuntimeError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Runtime, Message: message, Remediation: remediation}
}

// withCause attaches the underlying error.
func (e *CLIError) withCause(cause error) *CLIError {
	e.Cause = cause
	return e
}

// Wrap converts err into a CLIError of the given category. Returns nil for a nil error.
func Wrap(err error, category ErrorCategory, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     err.Error(),
		Remediation: remediation,
		Cause:       err,
	}
}

// WrapWithMessage is like Wrap but prefixes the message ("message: cause").
func WrapWithMessage(err error, category ErrorCategory, message string, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     fmt.Sprintf("%s: %s", message, err.Error()),
		Remediation: remediation,
		Cause:       err,
	}
}

// AsCLIError returns the first CLIError in err's chain, or nil.
func AsCLIError(err error) *CLIError {
	var cliErr *CLIError
	if stderrors.As(err, &cliErr) {
		return cliErr
	}
	return nil
}
