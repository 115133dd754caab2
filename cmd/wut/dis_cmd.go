package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/wut/internal/output"
	"github.com/raphi011/wut/internal/ui/static"
)

func newDisCmd() *cobra.Command {
	var showCommands bool

	cmd := &cobra.Command{
		Use:     "dis",
		Short:   "List commands for the current repository",
		Aliases: []string{"list", "ls"},
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Example: `  wut dis              # Titles and descriptions
  wut dis --commands   # Include the command strings`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			rc, err := loadRepo(ctx)
			if err != nil {
				return err
			}

			cmds := rc.commands()
			if len(cmds) == 0 {
				out.Notice(noCommandsMsg)
				return nil
			}

			out.Print(static.RenderCommands(cmds, showCommands))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showCommands, "commands", false, "Show the command strings")

	return cmd
}
