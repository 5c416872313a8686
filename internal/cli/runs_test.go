package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ariel-frischer/claude-clear-history/internal/runlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuns_ListsRecordedRuns(t *testing.T) {
	home := isolateHome(t)
	writeClaudeFile(t, home, sampleDocument)
	require.NoError(t, runCLI(t).err)

	res := runCLI(t, "runs")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, runlog.IDPrefix)
	assert.Contains(t, res.stdout, filepath.Join(home, ".claude.json"))
	assert.Contains(t, res.stdout, "cleared=3")
	assert.Contains(t, res.stdout, "exit=0")
}

func TestRuns_Empty(t *testing.T) {
	tests := map[string]struct {
		args []string
		want string
	}{
		"no runs":        {args: []string{"runs"}, want: "No runs recorded.\n"},
		"status filter":  {args: []string{"runs", "--status", "failed"}, want: "No failed runs.\n"},
		"limit and none": {args: []string{"runs", "-n", "2"}, want: "No runs recorded.\n"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			isolateHome(t)

			res := runCLI(t, tt.args...)

			require.NoError(t, res.err)
			assert.Equal(t, tt.want, res.stdout)
		})
	}
}

func TestRuns_Clear(t *testing.T) {
	home := isolateHome(t)
	writeClaudeFile(t, home, sampleDocument)
	require.NoError(t, runCLI(t).err)
	require.Len(t, loadRuns(t, home), 1)

	res := runCLI(t, "runs", "--clear")

	require.NoError(t, res.err)
	assert.Equal(t, "Run log cleared.\n", res.stdout)
	assert.Empty(t, loadRuns(t, home))
}

func TestRuns_InvalidFlags(t *testing.T) {
	tests := map[string][]string{
		"negative limit": {"runs", "--limit", "-1"},
		"unknown status": {"runs", "--status", "running"},
		"unknown flag":   {"runs", "--spec", "x"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			isolateHome(t)

			res := runCLI(t, args...)

			require.Error(t, res.err)
			assert.Equal(t, ExitInvalidArguments, res.code)
		})
	}
}

func TestRuns_StateDirFromConfig(t *testing.T) {
	isolateHome(t)
	stateDir := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"state_dir":"`+stateDir+`"}`), 0644))
	require.NoError(t, runlog.Save(stateDir, &runlog.Log{Entries: []runlog.Entry{
		{ID: "run-abc", Timestamp: time.Now(), File: "/x.json", Status: runlog.StatusFailed, ExitCode: 2, Error: "boom"},
	}}))

	res := runCLI(t, "runs", "--config", cfgPath)

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "run-abc")
	assert.Contains(t, res.stdout, "exit=2")
	assert.Contains(t, res.stdout, "boom")
}

func TestFilterRuns(t *testing.T) {
	t.Parallel()

	entries := []runlog.Entry{
		{ID: "1", Status: runlog.StatusCompleted},
		{ID: "2", Status: runlog.StatusFailed},
		{ID: "3", Status: runlog.StatusCompleted},
		{ID: "4", Status: runlog.StatusCompleted},
	}

	tests := map[string]struct {
		status  string
		limit   int
		wantIDs []string
	}{
		"all": {
			wantIDs: []string{"1", "2", "3", "4"},
		},
		"limit keeps most recent": {
			limit:   2,
			wantIDs: []string{"3", "4"},
		},
		"limit larger than log": {
			limit:   10,
			wantIDs: []string{"1", "2", "3", "4"},
		},
		"status": {
			status:  runlog.StatusFailed,
			wantIDs: []string{"2"},
		},
		"status and limit": {
			status:  runlog.StatusCompleted,
			limit:   1,
			wantIDs: []string{"4"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var ids []string
			for _, e := range filterRuns(entries, tt.status, tt.limit) {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
