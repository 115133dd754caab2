package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/wut/internal/config"
	"github.com/raphi011/wut/internal/git"
	"github.com/raphi011/wut/internal/log"
	"github.com/raphi011/wut/internal/output"
	"github.com/raphi011/wut/internal/ui/styles"
)

var (
	// Global flags
	verbose bool
	quiet   bool
)

// Command group IDs for organizing help output
const (
	GroupCore   = "core"
	GroupManage = "manage"
	GroupConfig = "config"
)

// ExitError makes main exit with Code without printing anything.
// It carries the exit status of a command run by "wut run".
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:                        "wut [selector]",
	Short:                      "Per-repository command runner",
	Long:                       rootLong(""),
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose && quiet {
			return fmt.Errorf("--verbose and --quiet are mutually exclusive")
		}

		// Flags are parsed by now, so the logger can honour them.
		cmd.SetContext(log.WithLogger(cmd.Context(), log.New(os.Stderr, verbose, quiet)))

		switch cmd.Name() {
		case "completion", "__complete", "help", "init", "edit":
			return nil
		}
		return git.CheckGit()
	},
}

// rootLong is the root help text, naming the commands file when known.
func rootLong(commandsPath string) string {
	long := `wut stores named shell commands per git repository and runs them.

Commands are keyed by the repository's origin ("owner/project"), so every
clone of a repository shares the same set. "wut run" without arguments
opens a fuzzy picker over them; "wut <selector>" is short for
"wut run <selector>".`
	if commandsPath != "" {
		long += "\n\nConfig: " + commandsPath
	}
	return long
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "wut: warning: %v\n", err)
	}
	cfg := &loadedCfg
	styles.Init(cfg.Theme)

	workDir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "wut: failed to get working directory: %v\n", err)
		os.Exit(1)
	}

	// SIGINT is also delivered to a running child; catching it here keeps
	// wut alive to report the child's exit status.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	ctx = config.WithConfig(ctx, cfg)
	ctx = config.WithWorkDir(ctx, workDir)
	ctx = log.WithLogger(ctx, log.New(os.Stderr, false, false))
	ctx = output.WithPrinter(ctx, os.Stdout)

	if path, err := config.CommandsPath(); err == nil {
		rootCmd.Long = rootLong(path)
	}
	rootCmd.SetContext(ctx)

	err = rootCmd.Execute()
	cancel()

	var exitErr *ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		os.Exit(exitErr.Code)
	default:
		fmt.Fprintf(os.Stderr, "wut: %v\n", err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'wut -h' for help")
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupManage, Title: "Manage Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	addRunShorthand(rootCmd)

	// Core commands
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newDisCmd())
	rootCmd.AddCommand(newCopyCmd())

	// Manage commands
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newRmCmd())
	rootCmd.AddCommand(newEditCmd())

	// Config commands
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newCompletionCmd())
}
