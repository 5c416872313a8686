// claude-clear-history - clears conversation history from ~/.claude.json
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/claude-clear-history

// Package cli provides the Cobra-based command tree for claude-clear-history.
// The root command performs the cleanup; `runs` and `version` are utilities.
package cli

import (
	"fmt"
	"io"
	"os"

	apperrors "github.com/ariel-frischer/claude-clear-history/internal/errors"
	"github.com/ariel-frischer/claude-clear-history/internal/logging"
	"github.com/ariel-frischer/claude-clear-history/internal/progress"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	verbose    bool
	debug      bool
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{logger: zap.NewNop()}
	clearOpts := &clearOptions{}

	cmd := &cobra.Command{
		Use:   "claude-clear-history",
		Short: "Clear conversation history from ~/.claude.json",
		Long: `Clear conversation history from ~/.claude.json

Empties the "history" list of every project in the Claude configuration
document and reports how many entries were removed. Every other setting in
the file is kept as is. No backup is made.

Source: https://github.com/ariel-frischer/claude-clear-history`,
		Example: `  # Clear all project history
  claude-clear-history

  # See what would be removed, per project, without writing
  claude-clear-history --dry-run --verbose

  # Clean another document, replacing it atomically
  claude-clear-history --file ./claude.json --atomic`,
		Args:          noArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(opts.debug)
			if err != nil {
				return apperrors.Wrap(err, apperrors.Runtime)
			}
			opts.logger = logger

			if !progress.DetectTerminalCapabilities(os.Stdout).SupportsColor {
				color.NoColor = true
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClear(cmd, opts, clearOpts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to an additional JSON config file")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Show per-project counts and full error details")
	cmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "Enable debug logging on stderr")

	cmd.Flags().StringVarP(&clearOpts.file, "file", "f", "", "Document to clean (default ~/.claude.json)")
	cmd.Flags().BoolVarP(&clearOpts.dryRun, "dry-run", "n", false, "Count history entries without writing")
	cmd.Flags().BoolVar(&clearOpts.atomic, "atomic", false, "Write via temp file + rename")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return apperrors.UnexpectedArguments(err.Error(), c.UseLine())
	})

	cmd.AddCommand(newRunsCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// noArgs rejects positional arguments as argument errors.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return apperrors.UnexpectedArguments(err.Error(), cmd.UseLine())
	}
	return nil
}

// Execute runs the root command and prints any error to stderr.
func Execute() error {
	return execute(newRootCmd())
}

func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		verbose, _ := cmd.PersistentFlags().GetBool("verbose")
		printError(cmd.ErrOrStderr(), err, verbose)
	}
	return err
}

// printError writes a single "Error: ..." line, or the full categorized
// error with remediation steps in verbose mode.
func printError(w io.Writer, err error, verbose bool) {
	if cliErr := apperrors.AsCLIError(err); verbose && cliErr != nil {
		apperrors.FprintError(w, cliErr)
		return
	}
	fmt.Fprintln(w, apperrors.FormatErrorLine(err))
}
