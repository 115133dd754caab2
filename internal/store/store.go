// Package store manages the commands file: per-repository lists of named
// shell commands, keyed by "owner/project".
package store

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	// ErrNotInitialized is returned by Load when the commands file does not exist.
	ErrNotInitialized = errors.New("commands file not found")

	// ErrTitleRequired and ErrCommandRequired reject incomplete commands.
	ErrTitleRequired   = errors.New("title is required")
	ErrCommandRequired = errors.New("command is required")

	// ErrExists is returned when a title is already taken within a repo.
	ErrExists = errors.New("already exists")

	// ErrNoMatch and ErrAmbiguous are returned by Resolve.
	ErrNoMatch   = errors.New("no command matches")
	ErrAmbiguous = errors.New("ambiguous selector")
)

// Command is a named shell command.
type Command struct {
	Title       string `toml:"title"`
	Command     string `toml:"command"`
	Description string `toml:"description,omitempty"`
}

// Repo holds the commands of one repository.
type Repo struct {
	Path     string    `toml:"path"`               // repository root at the time of the last add
	Commands []Command `toml:"commands,omitempty"` // in insertion order
}

// Store is the in-memory form of the commands file.
type Store struct {
	Repos map[string]Repo `toml:"repos"`

	path string
}

const header = `# wut commands, one table per repository ("owner/project").
# Edit with "wut edit" or add entries with "wut add".
`

// Load reads the commands file at path.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w at %s: run \"wut init\" to initialize", ErrNotInitialized, path)
		}
		return nil, fmt.Errorf("read commands: %w", err)
	}

	s := &Store{path: path}
	if err := toml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse commands file %s: %w", path, err)
	}
	if s.Repos == nil {
		s.Repos = make(map[string]Repo)
	}
	return s, nil
}

// Init creates an empty commands file at path unless one already exists.
// Returns whether the file was created.
func Init(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, err
	}

	if err := writeAtomic(path, []byte(header)); err != nil {
		return false, err
	}
	return true, nil
}

// Path returns the file the store was loaded from.
func (s *Store) Path() string {
	return s.path
}

// Save writes the store back to its file atomically.
func (s *Store) Save() error {
	var buf bytes.Buffer
	buf.WriteString(header)
	buf.WriteString("\n")
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return fmt.Errorf("encode commands: %w", err)
	}
	if err := writeAtomic(s.path, buf.Bytes()); err != nil {
		return fmt.Errorf("save commands: %w", err)
	}
	return nil
}

// writeAtomic writes to a temp file next to path and renames it into place.
func writeAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// Commands returns the commands stored for key, in file order.
// The returned slice is a copy.
func (s *Store) Commands(key string) []Command {
	return slices.Clone(s.Repos[key].Commands)
}

// AddCommand appends cmd to the repo stored under key, creating the repo
// entry if needed. root updates the recorded repository path when non-empty.
func (s *Store) AddCommand(key, root string, cmd Command) error {
	cmd.Title = strings.TrimSpace(cmd.Title)
	cmd.Command = strings.TrimSpace(cmd.Command)
	cmd.Description = strings.TrimSpace(cmd.Description)

	if cmd.Title == "" {
		return ErrTitleRequired
	}
	if cmd.Command == "" {
		return ErrCommandRequired
	}

	if s.Repos == nil {
		s.Repos = make(map[string]Repo)
	}
	repo := s.Repos[key]
	if slices.ContainsFunc(repo.Commands, func(c Command) bool { return c.Title == cmd.Title }) {
		return fmt.Errorf("command %q %w", cmd.Title, ErrExists)
	}

	if root != "" {
		repo.Path = root
	}
	repo.Commands = append(repo.Commands, cmd)
	s.Repos[key] = repo
	return nil
}

// RemoveCommand deletes the command titled title from the repo stored under key.
func (s *Store) RemoveCommand(key, title string) error {
	repo, ok := s.Repos[key]
	if !ok {
		return fmt.Errorf("%w %q", ErrNoMatch, title)
	}
	i := slices.IndexFunc(repo.Commands, func(c Command) bool { return c.Title == title })
	if i < 0 {
		return fmt.Errorf("%w %q", ErrNoMatch, title)
	}
	repo.Commands = slices.Delete(repo.Commands, i, i+1)
	s.Repos[key] = repo
	return nil
}

// Resolve picks one command by selector: an exact title wins, then titles
// starting with selector, then titles containing it. Matching is case-sensitive.
func Resolve(cmds []Command, selector string) (Command, error) {
	for _, c := range cmds {
		if c.Title == selector {
			return c, nil
		}
	}

	matches := filter(cmds, func(c Command) bool { return strings.HasPrefix(c.Title, selector) })
	if len(matches) == 0 {
		matches = filter(cmds, func(c Command) bool { return strings.Contains(c.Title, selector) })
	}

	switch len(matches) {
	case 0:
		return Command{}, fmt.Errorf("%w %q", ErrNoMatch, selector)
	case 1:
		return matches[0], nil
	default:
		return Command{}, fmt.Errorf("%w %q, matches: %s", ErrAmbiguous, selector, strings.Join(Titles(matches), ", "))
	}
}

func filter(cmds []Command, keep func(Command) bool) []Command {
	var out []Command
	for _, c := range cmds {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// Titles returns the titles of cmds in order.
func Titles(cmds []Command) []string {
	titles := make([]string, len(cmds))
	for i, c := range cmds {
		titles[i] = c.Title
	}
	return titles
}
