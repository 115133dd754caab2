package log

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"
)

func TestLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		verbose bool
		quiet   bool
		log     func(l *Logger)
		want    string
	}{
		{"printf", false, false, func(l *Logger) { l.Printf("warning: %s", "bad config") }, "warning: bad config"},
		{"println", false, false, func(l *Logger) { l.Println("warning:", "bad config") }, "warning: bad config\n"},
		{"quiet printf", false, true, func(l *Logger) { l.Printf("hidden") }, ""},
		{"quiet println", false, true, func(l *Logger) { l.Println("hidden") }, ""},
		{"debug keyvals", true, false, func(l *Logger) { l.Debug("loaded", "key", "acme/widgets", "commands", 2) }, "loaded key=acme/widgets commands=2\n"},
		{"debug drops dangling key", true, false, func(l *Logger) { l.Debug("loaded", "key") }, "loaded\n"},
		{"debug needs verbose", false, false, func(l *Logger) { l.Debug("loaded") }, ""},
		{"quiet wins over verbose", true, true, func(l *Logger) { l.Debug("loaded") }, ""},
		{"command with dir", true, false, func(l *Logger) { l.Command("/repo", "git", "rev-parse", "--show-toplevel")(1500 * time.Microsecond) }, "[/repo] $ git rev-parse --show-toplevel (2ms)\n"},
		{"command without dir", true, false, func(l *Logger) { l.Command("", "git")(0) }, "$ git (0s)\n"},
		{"command needs verbose", false, false, func(l *Logger) { l.Command("/repo", "git")(time.Second) }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			tt.log(New(&buf, tt.verbose, tt.quiet))
			if got := buf.String(); got != tt.want {
				t.Errorf("wrote %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsVerbose(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		verbose, quiet, want bool
	}{
		{false, false, false},
		{true, false, true},
		{true, true, false},
		{false, true, false},
	} {
		if got := New(io.Discard, tt.verbose, tt.quiet).IsVerbose(); got != tt.want {
			t.Errorf("New(verbose=%v, quiet=%v).IsVerbose() = %v, want %v", tt.verbose, tt.quiet, got, tt.want)
		}
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, true, false)
	if got := FromContext(WithLogger(context.Background(), l)); got != l {
		t.Error("FromContext should return the attached logger")
	}

	fallback := FromContext(context.Background())
	if fallback.Writer() != io.Discard {
		t.Error("fallback logger should discard output")
	}
	fallback.Printf("dropped")
	if strings.Contains(buf.String(), "dropped") {
		t.Error("fallback logger wrote to an unrelated writer")
	}
}
