package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/ariel-frischer/claude-clear-history/internal/config"
	apperrors "github.com/ariel-frischer/claude-clear-history/internal/errors"
	"github.com/ariel-frischer/claude-clear-history/internal/progress"
	"github.com/ariel-frischer/claude-clear-history/internal/runlog"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type runsOptions struct {
	limit  int
	clear  bool
	status string
}

func newRunsCmd(root *rootOptions) *cobra.Command {
	opts := &runsOptions{}

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Show past cleanup runs",
		Long: `Show the log of past cleanup runs with timestamp, target file, number of
cleared entries, status, exit code and duration.

The log only records that a run happened. Removed history entries are never
stored and cannot be restored.`,
		Example: `  # Show the last 5 runs
  claude-clear-history runs -n 5

  # Show failed runs only
  claude-clear-history runs --status failed

  # Forget all runs
  claude-clear-history runs --clear`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(root.configPath)
			if err != nil {
				return apperrors.ConfigParseError(root.configPath, err)
			}
			return runRuns(cmd, cfg.StateDir, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 0, "Limit to last N runs (most recent)")
	cmd.Flags().BoolVar(&opts.clear, "clear", false, "Clear the run log")
	cmd.Flags().StringVar(&opts.status, "status", "", "Filter by status (completed, failed)")

	return cmd
}

func runRuns(cmd *cobra.Command, stateDir string, opts *runsOptions) error {
	out := cmd.OutOrStdout()

	if opts.limit < 0 {
		return apperrors.NewArgumentErrorWithUsage(
			fmt.Sprintf("limit must be positive, got %d", opts.limit),
			cmd.UseLine(),
		)
	}
	switch opts.status {
	case "", runlog.StatusCompleted, runlog.StatusFailed:
	default:
		return apperrors.NewArgumentErrorWithUsage(
			fmt.Sprintf("unknown status %q", opts.status),
			cmd.UseLine(),
			"Use --status completed or --status failed",
		)
	}

	if opts.clear {
		if err := runlog.Clear(stateDir); err != nil {
			return apperrors.WrapWithMessage(err, apperrors.Runtime, "clearing run log")
		}
		fmt.Fprintln(out, "Run log cleared.")
		return nil
	}

	log, err := runlog.Load(stateDir)
	if err != nil {
		return apperrors.WrapWithMessage(err, apperrors.Runtime, "loading run log")
	}

	entries := filterRuns(log.Entries, opts.status, opts.limit)
	if len(entries) == 0 {
		if opts.status != "" {
			fmt.Fprintf(out, "No %s runs.\n", opts.status)
		} else {
			fmt.Fprintln(out, "No runs recorded.")
		}
		return nil
	}

	displayRuns(out, entries, progress.SelectSymbols(progress.DetectTerminalCapabilities(os.Stdout)))
	return nil
}

// filterRuns keeps entries with the given status (all when empty) and then
// the most recent limit of them (all when 0).
func filterRuns(entries []runlog.Entry, status string, limit int) []runlog.Entry {
	var result []runlog.Entry
	for _, e := range entries {
		if status != "" && e.Status != status {
			continue
		}
		result = append(result, e)
	}

	if limit > 0 && len(result) > limit {
		result = result[len(result)-limit:]
	}
	return result
}

func displayRuns(w io.Writer, entries []runlog.Entry, symbols progress.ProgressSymbols) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	for _, e := range entries {
		mark := green(symbols.Checkmark)
		if e.Status == runlog.StatusFailed {
			mark = red(symbols.Failure)
		}

		cleared := fmt.Sprintf("cleared=%d", e.Cleared)
		if e.DryRun {
			cleared += " " + dim("(dry run)")
		}

		fmt.Fprintf(w, "%s %s  %-15s  %s  exit=%d  %s  %s\n",
			mark,
			cyan(e.Timestamp.Format("2006-01-02 15:04:05")),
			e.ID,
			e.File,
			e.ExitCode,
			e.Duration,
			cleared,
		)
		if e.Error != "" {
			fmt.Fprintf(w, "    %s\n", dim(e.Error))
		}
	}
}
