package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/wut/internal/log"
	"github.com/raphi011/wut/internal/output"
	"github.com/raphi011/wut/internal/store"
	"github.com/raphi011/wut/internal/ui/prompt"
)

func newRmCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:               "rm <selector>",
		Short:             "Remove a command",
		Aliases:           []string{"remove"},
		GroupID:           GroupManage,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeTitles,
		Long: `Remove a command from the current repository.

The selector is resolved like "wut run <selector>". You are asked to
confirm unless --force is given.`,
		Example: `  wut rm deploy       # Remove after confirmation
  wut rm deploy -f    # Remove without asking`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			rc, err := loadRepo(ctx)
			if err != nil {
				return err
			}

			c, err := store.Resolve(rc.commands(), args[0])
			if err != nil {
				return err
			}

			if !force {
				if !isInteractive() {
					return errors.New("refusing to remove without confirmation, use --force")
				}
				result, err := prompt.Confirm(fmt.Sprintf("Remove %q (%s)?", c.Title, c.Command))
				if err != nil {
					return err
				}
				if result.Cancelled || !result.Confirmed {
					out.Notice("Cancelled")
					return nil
				}
			}

			if err := rc.store.RemoveCommand(rc.repo.Key, c.Title); err != nil {
				return err
			}
			if err := rc.store.Save(); err != nil {
				return err
			}

			l.Debug("removed command", "repo", rc.repo.Key, "title", c.Title)
			out.Success("Removed command %q", c.Title)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation")

	return cmd
}
