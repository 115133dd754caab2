package git

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrNotRepo is returned when the directory is not inside a git work tree.
var ErrNotRepo = errors.New("not in a git repository")

// ErrNoOrigin is returned when the repository has no usable origin remote.
var ErrNoOrigin = errors.New("cannot determine repo owner/project")

// ErrUnsupportedRemote is returned for origin URLs that are neither SSH nor HTTP(S).
var ErrUnsupportedRemote = errors.New("unsupported remote URL format")

// Repo identifies the repository a command runs against.
type Repo struct {
	Root string // absolute work tree root
	Key  string // "owner/project", used as the store key
}

// RepoRoot returns the top-level directory of the work tree containing dir.
func RepoRoot(ctx context.Context, dir string) (string, error) {
	root, err := git(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", ErrNotRepo
	}
	if root == "" {
		return "", ErrNotRepo
	}
	return root, nil
}

// OriginURL returns the URL of the origin remote of the repository at dir.
func OriginURL(ctx context.Context, dir string) (string, error) {
	origin, err := git(ctx, dir, "remote", "get-url", "origin")
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("%w: %v", ErrNoOrigin, err)
	}
	return origin, nil
}

// ParseRepoKey extracts "owner/project" from a remote URL.
//
// Supported forms:
//
//	git@github.com:owner/project.git
//	ssh://git@host:2222/owner/project.git
//	https://github.com/owner/project.git
//
// Nested group paths (gitlab) are kept whole: "group/sub/project".
func ParseRepoKey(remoteURL string) (string, error) {
	raw := strings.TrimSpace(remoteURL)

	var path string
	switch {
	case strings.HasPrefix(raw, "http://"), strings.HasPrefix(raw, "https://"), strings.HasPrefix(raw, "ssh://"):
		u, err := url.Parse(raw)
		if err != nil || u.Host == "" {
			return "", fmt.Errorf("%w: %q", ErrUnsupportedRemote, remoteURL)
		}
		path = u.Path
	case strings.Contains(raw, "@") && strings.Contains(raw, ":"):
		// scp-like syntax: user@host:owner/project
		at := strings.Index(raw, "@")
		colon := strings.Index(raw[at:], ":")
		path = raw[at+colon+1:]
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedRemote, remoteURL)
	}

	path = strings.Trim(path, "/")
	path = strings.TrimSuffix(path, ".git")
	if strings.Count(path, "/") < 1 || strings.Contains(path, "//") {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedRemote, remoteURL)
	}
	return path, nil
}

// Detect resolves the repository root and key for dir.
func Detect(ctx context.Context, dir string) (Repo, error) {
	root, err := RepoRoot(ctx, dir)
	if err != nil {
		return Repo{}, err
	}

	origin, err := OriginURL(ctx, root)
	if err != nil {
		return Repo{}, err
	}

	key, err := ParseRepoKey(origin)
	if err != nil {
		return Repo{}, err
	}

	return Repo{Root: root, Key: key}, nil
}
