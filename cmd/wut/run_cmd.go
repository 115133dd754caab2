package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/wut/internal/config"
	"github.com/raphi011/wut/internal/executor"
	"github.com/raphi011/wut/internal/log"
	"github.com/raphi011/wut/internal/output"
	"github.com/raphi011/wut/internal/picker"
)

func newRunCmd() *cobra.Command {
	var useCwd bool

	cmd := &cobra.Command{
		Use:               "run [selector]",
		Short:             "Run a command",
		Aliases:           []string{"r"},
		GroupID:           GroupCore,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeTitles,
		Long: `Run one of the repository's commands.

Without a selector an interactive fuzzy picker opens: type to filter,
up/down (or ctrl+p/ctrl+n) to move, enter to run, esc to cancel.

With a selector the command is chosen without prompting: an exact title
wins, then titles starting with the selector, then titles containing it.

The command runs through the configured shell in the repository root
(or the current directory with --cwd). wut exits with its exit status.`,
		Example: `  wut run               # Pick interactively
  wut run deploy        # Run the command titled "deploy"
  wut run dep           # Prefix match
  wut run test --cwd    # Run from the current directory
  wut deploy            # Shorthand for "wut run deploy"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd, args, useCwd)
		},
	}

	cmd.Flags().BoolVar(&useCwd, "cwd", false, "Run from the current directory instead of the repository root")

	return cmd
}

// runCommand selects a command (by selector or through the picker) and
// runs it. A nonzero child exit becomes an *ExitError.
func runCommand(cmd *cobra.Command, args []string, useCwd bool) error {
	ctx := cmd.Context()
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	rc, err := loadRepo(ctx)
	if err != nil {
		return err
	}

	dir := rc.repo.Root
	if useCwd {
		dir = config.WorkDirFromContext(ctx)
	}

	outcome, err := selectCommand(ctx, rc, args, dir)
	if err != nil {
		return err
	}

	switch outcome.Kind {
	case picker.OutcomeEmpty:
		out.Notice(noCommandsMsg)
		return nil
	case picker.OutcomeCancelled:
		return nil
	}

	l.Debug("running command", "title", outcome.Command.Title, "dir", outcome.WorkDir)

	code, err := executor.New(rc.cfg.Shell).Execute(ctx, outcome.Command.Command, outcome.WorkDir)
	if err != nil {
		return err
	}
	if code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}

// addRunShorthand lets "wut <selector>" stand for "wut run <selector>".
// Without arguments the root command prints its help.
func addRunShorthand(root *cobra.Command) {
	var useCwd bool

	root.Args = cobra.MaximumNArgs(1)
	root.ValidArgsFunction = completeTitles
	root.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runCommand(cmd, args, useCwd)
	}
	root.Flags().BoolVar(&useCwd, "cwd", false, "Run from the current directory instead of the repository root")
}
