package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ariel-frischer/claude-clear-history/internal/claude"
	"github.com/ariel-frischer/claude-clear-history/internal/runlog"
	"github.com/stretchr/testify/require"
)

// cliResult captures one invocation of the command tree.
type cliResult struct {
	stdout string
	stderr string
	err    error
	code   int
}

// isolateHome points HOME at a fresh temp dir so the default target,
// global config and state dir never touch the real user's files.
// Tests using it cannot run in parallel.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("NO_COLOR", "1")
	t.Setenv("CLAUDE_CLEAR_HISTORY_SHOW_PROGRESS", "false")
	return home
}

func runCLI(t *testing.T, args ...string) cliResult {
	t.Helper()

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := execute(cmd)
	return cliResult{
		stdout: stdout.String(),
		stderr: stderr.String(),
		err:    err,
		code:   ExitCode(err),
	}
}

func writeClaudeFile(t *testing.T, home, content string) string {
	t.Helper()
	path := filepath.Join(home, claude.DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func loadRuns(t *testing.T, home string) []runlog.Entry {
	t.Helper()
	log, err := runlog.Load(filepath.Join(home, ".claude-clear-history", "state"))
	require.NoError(t, err)
	return log.Entries
}

func lineCount(s string) int {
	return strings.Count(s, "\n")
}
