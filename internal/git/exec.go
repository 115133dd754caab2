package git

import (
	"context"

	"github.com/raphi011/wut/internal/cmd"
)

// git runs "git -C dir args..." and returns its trimmed stdout. An empty
// dir runs in the process working directory.
func git(ctx context.Context, dir string, args ...string) (string, error) {
	if dir != "" {
		args = append([]string{"-C", dir}, args...)
	}
	return cmd.Output(ctx, "", "git", args...)
}
