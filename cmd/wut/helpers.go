package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/raphi011/wut/internal/config"
	"github.com/raphi011/wut/internal/git"
	"github.com/raphi011/wut/internal/log"
	"github.com/raphi011/wut/internal/picker"
	"github.com/raphi011/wut/internal/store"
)

const noCommandsMsg = "No commands defined for this repository"

// repoContext bundles what a command needs to work on the current repository.
type repoContext struct {
	repo  git.Repo
	store *store.Store
	cfg   *config.Config // global config with the repo's .wut.toml applied
}

// commands returns the commands stored for the repository.
func (rc *repoContext) commands() []store.Command {
	return rc.store.Commands(rc.repo.Key)
}

// loadRepo detects the repository containing the working directory and
// loads the commands file.
func loadRepo(ctx context.Context) (*repoContext, error) {
	workDir := config.WorkDirFromContext(ctx)

	repo, err := git.Detect(ctx, workDir)
	if err != nil {
		return nil, err
	}

	path, err := config.CommandsPath()
	if err != nil {
		return nil, fmt.Errorf("locate commands file: %w", err)
	}
	s, err := store.Load(path)
	if err != nil {
		return nil, err
	}

	cfg, err := config.ForRepo(config.FromContext(ctx), repo.Root)
	if err != nil {
		return nil, err
	}

	log.FromContext(ctx).Debug("loaded repository", "key", repo.Key, "root", repo.Root, "file", s.Path(), "commands", len(s.Commands(repo.Key)))

	return &repoContext{repo: repo, store: s, cfg: cfg}, nil
}

// selectCommand picks a command by selector, or through the picker when no
// selector is given. dir is carried into a confirmed outcome.
func selectCommand(ctx context.Context, rc *repoContext, args []string, dir string) (picker.Outcome, error) {
	cmds := rc.commands()
	if len(cmds) == 0 {
		return picker.Outcome{Kind: picker.OutcomeEmpty}, nil
	}

	if len(args) > 0 {
		c, err := store.Resolve(cmds, args[0])
		if err != nil {
			return picker.Outcome{}, err
		}
		return picker.Outcome{Kind: picker.OutcomeConfirmed, Command: c, WorkDir: dir}, nil
	}

	return picker.Run(ctx, cmds, picker.Options{
		WorkDir:         dir,
		Height:          rc.cfg.Picker.Height,
		ShowDescription: rc.cfg.Picker.Descriptions,
	})
}

// isInteractive reports whether stdin is a terminal.
func isInteractive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
