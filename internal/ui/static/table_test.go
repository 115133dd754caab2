package static

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/raphi011/wut/internal/store"
)

func TestCommandTableRow(t *testing.T) {
	t.Parallel()

	c := store.Command{Title: "deploy", Command: "make deploy", Description: "Ship it"}

	row := CommandTableRow(c, false)
	if len(row) != len(CommandTableHeaders(false)) {
		t.Fatalf("expected %d columns, got %d", len(CommandTableHeaders(false)), len(row))
	}
	if row[0] != "deploy" || ansi.Strip(row[1]) != "Ship it" {
		t.Errorf("row = %q", row)
	}

	row = CommandTableRow(c, true)
	if len(row) != 3 || row[1] != "make deploy" {
		t.Errorf("row with command = %q", row)
	}
}

func TestCommandTableRowNoDescription(t *testing.T) {
	t.Parallel()

	row := CommandTableRow(store.Command{Title: "t", Command: "c"}, false)
	if ansi.Strip(row[1]) != "-" {
		t.Errorf("description column = %q, want -", ansi.Strip(row[1]))
	}
}

func TestRenderCommands(t *testing.T) {
	t.Parallel()

	if got := RenderCommands(nil, false); got != "" {
		t.Errorf("RenderCommands(nil) = %q, want empty", got)
	}

	out := ansi.Strip(RenderCommands([]store.Command{
		{Title: "build", Command: "go build", Description: "Compile"},
		{Title: "test", Command: "go test ./..."},
	}, true))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines:\n%s", len(lines), out)
	}
	for _, want := range []string{"TITLE", "COMMAND", "DESCRIPTION"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("header %q missing %q", lines[0], want)
		}
	}
	if !strings.HasPrefix(lines[1], "build") || !strings.Contains(lines[1], "go build") {
		t.Errorf("row 1 = %q", lines[1])
	}
	if !strings.Contains(lines[2], "go test ./...") {
		t.Errorf("row 2 = %q", lines[2])
	}
}
