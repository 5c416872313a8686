package cli

import (
	apperrors "github.com/ariel-frischer/claude-clear-history/internal/errors"
)

// Exit codes for the claude-clear-history CLI
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitValidationFailed indicates the document or configuration failed
	// validation (missing file, missing 'projects', bad config)
	ExitValidationFailed = 1

	// ExitRuntimeFailure indicates a failure while reading or writing
	// (malformed JSON, write errors)
	ExitRuntimeFailure = 2

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 3
)

// ExitCode returns the process exit code for an error returned by Execute.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	cliErr := apperrors.AsCLIError(err)
	if cliErr == nil {
		return ExitRuntimeFailure
	}

	switch cliErr.Category {
	case apperrors.Argument:
		return ExitInvalidArguments
	case apperrors.Configuration, apperrors.Prerequisite:
		return ExitValidationFailed
	default:
		return ExitRuntimeFailure
	}
}
