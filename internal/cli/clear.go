package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ariel-frischer/claude-clear-history/internal/claude"
	"github.com/ariel-frischer/claude-clear-history/internal/config"
	apperrors "github.com/ariel-frischer/claude-clear-history/internal/errors"
	"github.com/ariel-frischer/claude-clear-history/internal/progress"
	"github.com/ariel-frischer/claude-clear-history/internal/runlog"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// saveDocument persists a cleaned document. Replaced in tests.
var saveDocument = (*claude.Document).Save

// clearOptions holds the root command's local flags.
type clearOptions struct {
	file   string
	dryRun bool
	atomic bool
}

// runClear loads the configuration, cleans the target document and records
// the run in the run log.
func runClear(cmd *cobra.Command, opts *rootOptions, clearOpts *clearOptions) error {
	start := time.Now()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return apperrors.ConfigParseError(opts.configPath, err)
	}

	path := cfg.TargetFile
	if clearOpts.file != "" {
		path = clearOpts.file
	}

	c := &cleaner{
		out:     cmd.OutOrStdout(),
		logger:  opts.logger.With(zap.String("path", path)),
		spinner: progress.NewSpinner(progress.DetectTerminalCapabilities(os.Stderr), cmd.ErrOrStderr()),
		verbose: opts.verbose,
		save: claude.SaveOptions{
			Indent: cfg.Indent,
			Atomic: cfg.AtomicWrite || clearOpts.atomic,
		},
		showProgress: cfg.ShowProgress,
	}

	cleared, err := c.run(path, clearOpts.dryRun)

	if cfg.RunLog {
		w := runlog.NewWriter(cfg.StateDir, cfg.RunLogMaxEntries, cmd.ErrOrStderr())
		w.Record(runlog.NewEntry(start, path, cleared, clearOpts.dryRun, ExitCode(err), err))
	}

	return err
}

// cleaner drives Load → ClearHistory → Save → Report for one document.
type cleaner struct {
	out          io.Writer
	logger       *zap.Logger
	spinner      *progress.Spinner
	verbose      bool
	save         claude.SaveOptions
	showProgress bool
}

// run cleans the document at path and returns the number of entries removed
// (or that would be removed in a dry run). Nothing is counted as removed
// unless the write succeeded.
func (c *cleaner) run(path string, dryRun bool) (int, error) {
	c.startSpinner("Loading " + path)
	defer c.spinner.Stop()

	doc, err := claude.Load(path)
	if err != nil {
		c.logger.Debug("load failed", zap.Error(err))
		return 0, loadError(path, err)
	}

	projects := doc.Projects()
	c.logger.Debug("document loaded",
		zap.Int("projects", len(projects)),
		zap.Int("history_entries", doc.HistoryCount()))

	if dryRun {
		c.spinner.Stop()
		count := doc.HistoryCount()
		c.printProjects(projects)
		reportCleared(c.out, count, true)
		return count, nil
	}

	cleared := doc.ClearHistory()

	c.startSpinner("Writing " + path)
	if err := saveDocument(doc, path, c.save); err != nil {
		c.logger.Debug("save failed", zap.Error(err), zap.Bool("atomic", c.save.Atomic))
		return 0, apperrors.ClaudeFileNotWritable(path, err)
	}
	c.spinner.Stop()

	c.logger.Debug("document saved",
		zap.Int("cleared", cleared),
		zap.Bool("atomic", c.save.Atomic))

	c.printProjects(projects)
	reportCleared(c.out, cleared, false)
	return cleared, nil
}

func (c *cleaner) startSpinner(msg string) {
	if c.showProgress {
		c.spinner.Start(msg)
	}
}

// printProjects lists projects that have history, in verbose mode only.
func (c *cleaner) printProjects(projects []claude.ProjectSummary) {
	if !c.verbose {
		return
	}
	dim := color.New(color.Faint).SprintFunc()
	for _, p := range projects {
		if p.HistoryLen == 0 {
			continue
		}
		fmt.Fprintf(c.out, "  %s %s\n", dim(fmt.Sprintf("%5d", p.HistoryLen)), p.ID)
	}
}

// loadError maps claude.Load failures to user-facing errors.
func loadError(path string, err error) error {
	var structErr *claude.StructureError
	switch {
	case errors.Is(err, claude.ErrNotFound):
		return apperrors.ClaudeFileNotFound(path, err)
	case errors.As(err, &structErr):
		return apperrors.InvalidClaudeStructure(path, structErr.Detail, err)
	case errors.Is(err, claude.ErrParse):
		return apperrors.MalformedClaudeFile(path, err)
	default:
		return apperrors.WrapWithMessage(err, apperrors.Runtime, "failed to read Claude configuration")
	}
}

// reportCleared prints the single status line for a run.
func reportCleared(w io.Writer, count int, dryRun bool) {
	blue := color.New(color.FgBlue).SprintFunc()
	verb := "Cleared"
	if dryRun {
		verb = "Would clear"
	}
	fmt.Fprintln(w, blue(fmt.Sprintf("%s %d conversation(s) from Claude history", verb, count)))
}
