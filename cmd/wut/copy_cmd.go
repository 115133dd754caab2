package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/raphi011/wut/internal/output"
	"github.com/raphi011/wut/internal/picker"
)

func newCopyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "copy [selector]",
		Short:             "Copy a command to the clipboard",
		Aliases:           []string{"cp"},
		GroupID:           GroupCore,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeTitles,
		Long: `Copy a command string to the clipboard instead of running it.

Selection works like "wut run": the picker opens without a selector.`,
		Example: `  wut copy          # Pick interactively
  wut copy deploy   # Copy the "deploy" command`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			rc, err := loadRepo(ctx)
			if err != nil {
				return err
			}

			outcome, err := selectCommand(ctx, rc, args, rc.repo.Root)
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

			if err := clipboard.WriteAll(outcome.Command.Command); err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}
			out.Success("Copied %q", outcome.Command.Title)
			return nil
		},
	}

	return cmd
}
