package errors

import "fmt"

// ClaudeFileNotFound reports a missing Claude configuration document.
func ClaudeFileNotFound(path string, cause error) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("File not found: %s", path),
		"Start Claude Code once so it creates the file",
		"Pass --file to point at a different document",
	).withCause(cause)
}

// InvalidClaudeStructure reports a document that parsed but has the wrong shape.
func InvalidClaudeStructure(path, detail string, cause error) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("Invalid structure: %s", detail),
		fmt.Sprintf("Check that %s is a Claude configuration document", path),
		"The top level must be an object with a 'projects' object",
	).withCause(cause)
}

// MalformedClaudeFile reports a document that is not valid JSON.
func MalformedClaudeFile(path string, cause error) *CLIError {
	return NewRuntimeError(
		fmt.Sprintf("failed to parse Claude configuration: %v", cause),
		fmt.Sprintf("Validate %s with a JSON linter", path),
		"Restore it from a backup if it was truncated",
	).withCause(cause)
}

// ClaudeFileNotWritable reports a failure to persist the cleaned document.
func ClaudeFileNotWritable(path string, cause error) *CLIError {
	return NewRuntimeError(
		fmt.Sprintf("failed to write Claude configuration: %v", cause),
		fmt.Sprintf("Check permissions and free space for %s", path),
		"Retry with --atomic to leave the original untouched on failure",
	).withCause(cause)
}

// ConfigParseError reports a config file that could not be loaded or validated.
func ConfigParseError(path string, cause error) *CLIError {
	location := "configuration"
	if path != "" {
		location = path
	}
	return NewConfigError(
		fmt.Sprintf("invalid configuration (%s): %v", location, cause),
		"Fix the offending key in the config file or CLAUDE_CLEAR_HISTORY_* environment variable",
		"Remove the config file to fall back to defaults",
	).withCause(cause)
}

// UnexpectedArguments reports positional arguments given to a command that takes none.
func UnexpectedArguments(message, usage string) *CLIError {
	return NewArgumentErrorWithUsage(message, usage, "Run with --help to see supported flags")
}
