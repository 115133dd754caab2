// Package executor runs a stored command string through a shell with the
// caller's stdio and reports the child's exit status.
package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/kballard/go-shellquote"
	"github.com/raphi011/wut/internal/log"
)

// Executor runs commands through Shell.
type Executor struct {
	// Shell interprets the command string: "sh", "bash", "cmd", "pwsh", ...
	Shell string

	// Stdin, Stdout and Stderr default to the process's own.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New returns an Executor using shell and the process's stdio.
func New(shell string) *Executor {
	return &Executor{Shell: shell}
}

// Execute runs command in dir and blocks until it exits.
//
// A child that exits nonzero is not an error: its status is returned as
// exitCode, with 128+signal for children killed by a signal. err is set only
// when the shell could not be started. ctx is only used for logging; the
// child is never killed on cancellation.
func (e *Executor) Execute(ctx context.Context, command, dir string) (exitCode int, err error) {
	name, args := invocation(e.Shell, command)

	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	if e.Stdin != nil {
		cmd.Stdin = e.Stdin
	}
	if e.Stdout != nil {
		cmd.Stdout = e.Stdout
	}
	if e.Stderr != nil {
		cmd.Stderr = e.Stderr
	}

	done := log.FromContext(ctx).Command(dir, shellquote.Join(append([]string{name}, args...)...))
	start := time.Now()
	err = cmd.Run()
	done(time.Since(start))

	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return statusCode(exitErr.ProcessState), nil
	}
	return -1, fmt.Errorf("start %s: %w", name, err)
}

// invocation returns the program and arguments that make shell interpret command.
func invocation(shell, command string) (string, []string) {
	if shell == "" {
		shell = "sh"
	}

	base := strings.ToLower(strings.TrimSuffix(filepath.Base(shell), filepath.Ext(shell)))
	switch base {
	case "cmd":
		return shell, []string{"/C", command}
	case "pwsh", "powershell":
		return shell, []string{"-NoProfile", "-Command", command}
	default:
		return shell, []string{"-c", command}
	}
}

// statusCode maps a finished process to a shell-style exit status.
func statusCode(state *os.ProcessState) int {
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return state.ExitCode()
}
