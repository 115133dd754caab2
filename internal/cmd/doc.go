// Package cmd runs helper programs whose output wut parses, git mostly.
//
// Output captures stdout and folds stderr into an *Error, so a failing
// "git remote get-url origin" reports git's own message instead of a bare
// exit status. Invocations are echoed through the context logger in
// verbose mode.
//
// Stored user commands do not go through this package. They need
// inherited stdio and are run by the executor package.
package cmd
