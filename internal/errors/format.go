package errors

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// FormatError renders err with a category header, usage and remediation steps.
// Colors follow fatih/color's global settings (disabled when not a TTY).
func FormatError(err *CLIError) string {
	if err == nil {
		return ""
	}
	header := color.New(color.FgRed, color.Bold).SprintFunc()
	label := color.New(color.FgYellow).SprintFunc()
	step := color.New(color.FgCyan).SprintFunc()

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", header(err.Category.String()+":"), err.Message)

	if err.Usage != "" {
		fmt.Fprintf(&b, "\n%s\n  %s\n", label("Usage:"), err.Usage)
	}

	if len(err.Remediation) > 0 {
		fmt.Fprintf(&b, "\n%s\n", label("To fix this:"))
		for i, r := range err.Remediation {
			fmt.Fprintf(&b, "  %s %s\n", step(fmt.Sprintf("%d.", i+1)), r)
		}
	}

	return b.String()
}

// FormatErrorLine renders err as a single "Error: message" line.
func FormatErrorLine(err error) string {
	if err == nil {
		return ""
	}
	red := color.New(color.FgRed).SprintFunc()
	return red("Error: " + err.Error())
}

// FprintError writes the formatted error to w. A nil error writes nothing.
func FprintError(w io.Writer, err *CLIError) {
	if err == nil {
		return
	}
	fmt.Fprint(w, FormatError(err))
}
