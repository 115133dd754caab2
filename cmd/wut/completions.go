package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/wut/internal/config"
	"github.com/raphi011/wut/internal/git"
	"github.com/raphi011/wut/internal/store"
)

// completeTitles completes the selector argument with the current
// repository's command titles, descriptions included.
func completeTitles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	ctx := cmd.Context()
	if !git.IsInsideRepo(ctx, config.WorkDirFromContext(ctx)) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	rc, err := loadRepo(ctx)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	return titleCompletions(rc.commands(), toComplete), cobra.ShellCompDirectiveNoFileComp
}

func titleCompletions(cmds []store.Command, prefix string) []string {
	var out []string
	for _, c := range cmds {
		if !strings.HasPrefix(c.Title, prefix) {
			continue
		}
		if c.Description != "" {
			out = append(out, c.Title+"\t"+c.Description)
		} else {
			out = append(out, c.Title+"\t"+c.Command)
		}
	}
	return out
}
