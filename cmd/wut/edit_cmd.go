package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/wut/internal/config"
	"github.com/raphi011/wut/internal/editor"
	"github.com/raphi011/wut/internal/log"
	"github.com/raphi011/wut/internal/store"
)

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "edit",
		Short:   "Edit the commands file",
		GroupID: GroupManage,
		Args:    cobra.NoArgs,
		Long: `Open the commands file in your editor.

The editor is taken from $VISUAL, then $EDITOR, falling back to vi
(notepad on Windows). The file is checked after the editor exits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			path, err := config.CommandsPath()
			if err != nil {
				return fmt.Errorf("locate commands file: %w", err)
			}

			// A missing file reports the init hint; a broken one is what the editor is for.
			if _, err := store.Load(path); errors.Is(err, store.ErrNotInitialized) {
				return err
			}

			if err := editor.Open(ctx, path); err != nil {
				return err
			}

			if _, err := store.Load(path); err != nil {
				l.Printf("Warning: %v\n", err)
			}
			return nil
		},
	}

	return cmd
}
