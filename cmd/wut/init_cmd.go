package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/wut/internal/config"
	"github.com/raphi011/wut/internal/output"
	"github.com/raphi011/wut/internal/store"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "init",
		Short:   "Create the config and commands files",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Create the wut config directory with an empty commands file and a
commented default config.toml. Existing files are left alone; --force
rewrites config.toml (never the commands file).

Locations default to $XDG_CONFIG_HOME/wut (or ~/.config/wut) and can be
overridden with WUT_CONFIG_FILE and WUT_COMMANDS_FILE.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			commandsPath, err := config.CommandsPath()
			if err != nil {
				return fmt.Errorf("locate commands file: %w", err)
			}
			created, err := store.Init(commandsPath)
			if err != nil {
				return fmt.Errorf("create commands file: %w", err)
			}
			report(out, created, commandsPath)

			configPath, written, err := config.Init(force)
			if err != nil {
				return fmt.Errorf("create config file: %w", err)
			}
			report(out, written, configPath)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config.toml")

	return cmd
}

func report(out *output.Printer, created bool, path string) {
	if created {
		out.Success("Initialized config at %s", path)
	} else {
		out.Notice("Config already exists at %s", path)
	}
}
