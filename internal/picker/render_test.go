package picker

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/raphi011/wut/internal/store"
)

func renderPlain(s *State, opts RenderOptions) string {
	return ansi.Strip(Render(s, opts))
}

func TestRender_QueryAndCount(t *testing.T) {
	t.Parallel()

	s := NewState([]store.Command{
		{Title: "deploy", Command: "make deploy"},
		{Title: "test", Command: "make test"},
	})
	typeText(s, "de")

	out := renderPlain(s, RenderOptions{})
	lines := strings.Split(out, "\n")
	if lines[0] != "> de█" {
		t.Errorf("query line = %q", lines[0])
	}
	if lines[1] != "1/2" {
		t.Errorf("count line = %q", lines[1])
	}
	if !strings.Contains(out, "> deploy  make deploy") {
		t.Errorf("selected entry missing:\n%s", out)
	}
	if strings.Contains(out, "make test") {
		t.Errorf("filtered entry rendered:\n%s", out)
	}
	if !strings.Contains(out, "enter run") {
		t.Errorf("help line missing:\n%s", out)
	}
}

func TestRender_NoMatches(t *testing.T) {
	t.Parallel()

	s := NewState(testCommands(2))
	typeText(s, "zzz")

	out := renderPlain(s, RenderOptions{})
	if !strings.Contains(out, "No matching commands") {
		t.Errorf("missing empty message:\n%s", out)
	}
	if !strings.Contains(out, "0/2") {
		t.Errorf("missing count:\n%s", out)
	}
}

func TestRender_Scrolling(t *testing.T) {
	t.Parallel()

	s := NewState(testCommands(15))

	out := renderPlain(s, RenderOptions{Height: 5})
	if strings.Contains(out, "↑") {
		t.Errorf("unexpected up marker at top:\n%s", out)
	}
	if !strings.Contains(out, "↓ 10 more") {
		t.Errorf("missing down marker:\n%s", out)
	}

	press(s, KeyDown, 7)
	out = renderPlain(s, RenderOptions{Height: 5})
	// cursor 7, height 5: window [3, 8)
	if !strings.Contains(out, "↑ 3 more") || !strings.Contains(out, "↓ 7 more") {
		t.Errorf("markers wrong for cursor 7:\n%s", out)
	}
	if !strings.Contains(out, "> cmd7") {
		t.Errorf("cursor entry not visible:\n%s", out)
	}
	for _, hidden := range []string{"cmd2 ", "cmd8 "} {
		if strings.Contains(out, hidden) {
			t.Errorf("%q should be outside the window:\n%s", hidden, out)
		}
	}

	press(s, KeyDown, 20)
	out = renderPlain(s, RenderOptions{Height: 5})
	if strings.Contains(out, "↓") || !strings.Contains(out, "↑ 10 more") {
		t.Errorf("markers wrong at bottom:\n%s", out)
	}
}

func TestWindow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cursor, total, height int
		start, end            int
	}{
		{0, 3, 10, 0, 3},
		{0, 20, 10, 0, 10},
		{9, 20, 10, 0, 10},
		{10, 20, 10, 1, 11},
		{19, 20, 10, 10, 20},
		{4, 5, 1, 4, 5},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("cursor=%d/total=%d/height=%d", tt.cursor, tt.total, tt.height), func(t *testing.T) {
			start, end := window(tt.cursor, tt.total, tt.height)
			if start != tt.start || end != tt.end {
				t.Errorf("window() = [%d, %d), want [%d, %d)", start, end, tt.start, tt.end)
			}
		})
	}
}

func TestRender_Descriptions(t *testing.T) {
	t.Parallel()

	s := NewState([]store.Command{
		{Title: "deploy", Command: "make deploy", Description: "Ship to production"},
	})

	if out := renderPlain(s, RenderOptions{ShowDescription: true}); !strings.Contains(out, "    Ship to production") {
		t.Errorf("description missing:\n%s", out)
	}
	if out := renderPlain(s, RenderOptions{}); strings.Contains(out, "Ship to production") {
		t.Errorf("description shown while disabled:\n%s", out)
	}
}

func TestRender_Width(t *testing.T) {
	t.Parallel()

	s := NewState([]store.Command{
		{Title: "long", Command: strings.Repeat("x", 200)},
	})

	out := Render(s, RenderOptions{Width: 40})
	for _, line := range strings.Split(out, "\n") {
		if w := ansi.StringWidth(line); w > 40 {
			t.Errorf("line width %d exceeds 40: %q", w, ansi.Strip(line))
		}
	}
}

func TestHighlight_ByteOffsets(t *testing.T) {
	t.Parallel()

	s := NewState([]store.Command{{Title: "héllo", Command: "true"}})
	typeText(s, "hl")
	m, ok := s.Selected()
	if !ok {
		t.Fatal("expected a match")
	}

	// "l" starts at byte 3 because "é" is two bytes.
	if m.MatchedIndexes[0] != 0 || m.MatchedIndexes[1] < 3 {
		t.Fatalf("unexpected offsets %v", m.MatchedIndexes)
	}
	if got := ansi.Strip(renderEntry(m, false, false)[0]); got != "  héllo  true" {
		t.Errorf("entry = %q", got)
	}
}
