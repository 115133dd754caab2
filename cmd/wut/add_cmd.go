package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/wut/internal/log"
	"github.com/raphi011/wut/internal/output"
	"github.com/raphi011/wut/internal/store"
	"github.com/raphi011/wut/internal/ui/prompt"
)

func newAddCmd() *cobra.Command {
	var c store.Command

	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Add a command",
		Aliases: []string{"a"},
		GroupID: GroupManage,
		Args:    cobra.NoArgs,
		Long: `Add a command to the current repository.

Values not given as flags are prompted for when running in a terminal.
Title and command are required; the description is optional. Titles
must be unique within a repository.`,
		Example: `  wut add                                   # Prompt for everything
  wut add -t deploy -c "make deploy"        # Non-interactive
  wut add -t test -c "go test ./..." -d "Run unit tests"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			rc, err := loadRepo(ctx)
			if err != nil {
				return err
			}

			if (c.Title == "" || c.Command == "") && isInteractive() {
				fields := []struct {
					value *string
					label string
					opts  prompt.TextOptions
				}{
					{&c.Title, "Title", prompt.TextOptions{Placeholder: "e.g. deploy", Required: true}},
					{&c.Command, "Command", prompt.TextOptions{Placeholder: "e.g. make deploy", Required: true}},
					{&c.Description, "Description (optional)", prompt.TextOptions{}},
				}
				for _, f := range fields {
					if *f.value != "" {
						continue
					}
					result, err := prompt.TextInput(f.label, f.opts)
					if err != nil {
						return err
					}
					if result.Cancelled {
						out.Notice("Cancelled")
						return nil
					}
					*f.value = result.Value
				}
			}

			if err := rc.store.AddCommand(rc.repo.Key, rc.repo.Root, c); err != nil {
				return err
			}
			if err := rc.store.Save(); err != nil {
				return err
			}

			l.Debug("added command", "repo", rc.repo.Key, "title", c.Title)
			out.Success("Added command %q", strings.TrimSpace(c.Title))
			return nil
		},
	}

	cmd.Flags().StringVarP(&c.Title, "title", "t", "", "Command title")
	cmd.Flags().StringVarP(&c.Command, "command", "c", "", "Shell command to run")
	cmd.Flags().StringVarP(&c.Description, "description", "d", "", "Optional description")

	return cmd
}
