// claude-clear-history - clears conversation history from ~/.claude.json
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/claude-clear-history

package main

import (
	"os"

	"github.com/ariel-frischer/claude-clear-history/internal/cli"
)

func main() {
	os.Exit(cli.ExitCode(cli.Execute()))
}
