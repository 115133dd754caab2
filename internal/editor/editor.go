// Package editor opens files in the user's editor.
package editor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"
	"github.com/raphi011/wut/internal/log"
)

// Resolve returns the editor command line: $VISUAL, then $EDITOR, then vi
// (notepad on Windows). Values like "code --wait" are split shell-style.
func Resolve() ([]string, error) {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		v := strings.TrimSpace(os.Getenv(env))
		if v == "" {
			continue
		}
		args, err := shellquote.Split(v)
		if err != nil {
			return nil, fmt.Errorf("parse $%s: %w", env, err)
		}
		if len(args) > 0 {
			return args, nil
		}
	}

	if runtime.GOOS == "windows" {
		return []string{"notepad"}, nil
	}
	return []string{"vi"}, nil
}

// Open opens path in the resolved editor with inherited stdio and waits
// for it to exit.
func Open(ctx context.Context, path string) error {
	argv, err := Resolve()
	if err != nil {
		return err
	}

	args := append(argv[1:], path)
	cmd := exec.Command(argv[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	done := log.FromContext(ctx).Command("", argv[0], args...)
	start := time.Now()
	err = cmd.Run()
	done(time.Since(start))

	if err != nil {
		return fmt.Errorf("open editor: %w", err)
	}
	return nil
}
