package picker

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/raphi011/wut/internal/store"
)

func TestMatchText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query string
		text  string
		want  bool
	}{
		{"", "anything", true},
		{"", "", true},
		{"de", "deploy", true},
		{"dpy", "deploy", true},
		{"DEP", "deploy", true},
		{"dep", "DEPLOY", true},
		{"md", "make deploy", true},
		{"de", "make test", false},
		{"yd", "deploy", false},
		{"deployx", "deploy", false},
		{"x", "", false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s in %s", tt.query, tt.text), func(t *testing.T) {
			t.Parallel()

			_, _, ok := MatchText(tt.query, tt.text)
			if ok != tt.want {
				t.Errorf("MatchText(%q, %q) ok = %v, want %v", tt.query, tt.text, ok, tt.want)
			}
		})
	}
}

func TestMatchText_EmptyQuery(t *testing.T) {
	t.Parallel()

	score, idx, ok := MatchText("", "deploy")
	if !ok || score != 0 || idx != nil {
		t.Errorf("MatchText(\"\", ...) = %d, %v, %v; want 0, nil, true", score, idx, ok)
	}
}

func TestMatchText_Positions(t *testing.T) {
	t.Parallel()

	_, idx, ok := MatchText("dep", "deploy")
	if !ok {
		t.Fatal("expected match")
	}
	if !reflect.DeepEqual(idx, []int{0, 1, 2}) {
		t.Errorf("indexes = %v, want [0 1 2]", idx)
	}
}

func TestMatchText_ContiguousScoresHigher(t *testing.T) {
	t.Parallel()

	// Same length and same first character; only contiguity differs.
	contiguous, _, ok1 := MatchText("dep", "deploy")
	scattered, _, ok2 := MatchText("dep", "dxexpx")
	if !ok1 || !ok2 {
		t.Fatal("expected both to match")
	}
	if contiguous <= scattered {
		t.Errorf("contiguous score %d should beat scattered %d", contiguous, scattered)
	}
}

func TestMatchText_BetterAlignmentNeverScoresLower(t *testing.T) {
	t.Parallel()

	// Each pair has the same query and text length; better differs from
	// worse only by more contiguity or more boundary alignment, wherever
	// the match starts.
	tests := []struct {
		query, better, worse string
	}{
		{"ab", "xxxxab", "xaxxxb"},
		{"ab", "xxxab", "xaxxb"},
		{"dep", "xxdep", "xdxep"},
		{"dep", "xxxxxxdep", "dxxexxpxx"},
		{"ab", "x-ab", "xxab"},
		{"ab", "x_ab", "axxb"},
		{"b", "aB", "ab"},
		{"run", "go run", "gorxun"},
	}

	for _, tt := range tests {
		t.Run(tt.better+" vs "+tt.worse, func(t *testing.T) {
			t.Parallel()

			better, _, ok1 := MatchText(tt.query, tt.better)
			worse, _, ok2 := MatchText(tt.query, tt.worse)
			if !ok1 || !ok2 {
				t.Fatalf("expected both to match %q", tt.query)
			}
			if better <= worse {
				t.Errorf("MatchText(%q, %q) = %d, want more than MatchText(%q, %q) = %d",
					tt.query, tt.better, better, tt.query, tt.worse, worse)
			}
		})
	}
}

func TestMatchText_NulInText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query, text string
		want        []int
		ok          bool
	}{
		{"a", "a\x00b", []int{0}, true},
		{"ab", "a\x00b", []int{0, 2}, true},
		{"b", "\x00\x00b", []int{2}, true},
		{"c", "a\x00b", nil, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q in %q", tt.query, tt.text), func(t *testing.T) {
			t.Parallel()

			_, idx, ok := MatchText(tt.query, tt.text)
			if ok != tt.ok || !reflect.DeepEqual(idx, tt.want) {
				t.Errorf("MatchText(%q, %q) = %v, %v; want %v, %v", tt.query, tt.text, idx, ok, tt.want, tt.ok)
			}
		})
	}

	if got := Rank("a", []store.Command{{Title: "nul", Command: "echo a\x00b"}}); len(got) != 1 {
		t.Errorf("Rank over a command with NUL = %d matches, want 1", len(got))
	}
}

func TestMatchText_ShorterScoresHigher(t *testing.T) {
	t.Parallel()

	short, _, _ := MatchText("test", "test")
	long, _, _ := MatchText("test", "test-integration")
	if short <= long {
		t.Errorf("exact-length score %d should beat longer text %d", short, long)
	}
}

func TestRank_Scenario(t *testing.T) {
	t.Parallel()

	cmds := []store.Command{
		{Title: "deploy", Command: "make deploy"},
		{Title: "test", Command: "make test"},
	}

	ranked := Rank("de", cmds)
	if len(ranked) != 1 {
		t.Fatalf("got %d matches, want 1", len(ranked))
	}
	if ranked[0].Command.Title != "deploy" || ranked[0].Index != 0 {
		t.Errorf("ranked[0] = %+v", ranked[0])
	}
}

func TestRank_EmptyQueryKeepsOrder(t *testing.T) {
	t.Parallel()

	cmds := testCommands(5)
	ranked := Rank("", cmds)
	if len(ranked) != len(cmds) {
		t.Fatalf("got %d matches, want %d", len(ranked), len(cmds))
	}
	for i, m := range ranked {
		if m.Index != i || m.Score != 0 || m.Command != cmds[i] {
			t.Errorf("ranked[%d] = %+v", i, m)
		}
	}
}

func TestRank_ExcludesNonSubsequences(t *testing.T) {
	t.Parallel()

	cmds := []store.Command{
		{Title: "build", Command: "go build ./..."},
		{Title: "lint", Command: "golangci-lint run"},
		{Title: "serve", Command: "go run ./cmd/server"},
	}

	for _, q := range []string{"b", "go", "run", "lnt", "zz", "sv", "./"} {
		for _, m := range Rank(q, cmds) {
			_, _, inTitle := MatchText(q, m.Command.Title)
			_, _, inCommand := MatchText(q, m.Command.Command)
			if !inTitle && !inCommand {
				t.Errorf("Rank(%q) kept %q which matches neither field", q, m.Command.Title)
			}
		}
	}

	if got := Rank("zz", cmds); len(got) != 0 {
		t.Errorf("Rank(\"zz\") = %v, want empty", got)
	}
}

func TestRank_SortedAndStable(t *testing.T) {
	t.Parallel()

	cmds := []store.Command{
		{Title: "test-a", Command: "echo"},
		{Title: "test-b", Command: "echo"},
		{Title: "retest", Command: "echo"},
		{Title: "test-c", Command: "echo"},
		{Title: "t", Command: "echo test"},
		{Title: "other", Command: "echo"},
	}

	for _, q := range []string{"", "t", "te", "test", "e", "o"} {
		ranked := Rank(q, cmds)
		for i := 1; i < len(ranked); i++ {
			prev, cur := ranked[i-1], ranked[i]
			if cur.Score > prev.Score {
				t.Errorf("Rank(%q): score increases at %d (%d > %d)", q, i, cur.Score, prev.Score)
			}
			if cur.Score == prev.Score && cur.Index < prev.Index {
				t.Errorf("Rank(%q): equal scores out of candidate order at %d", q, i)
			}
		}
	}

	// test-a, test-b and test-c score identically for "test".
	var order []string
	for _, m := range Rank("test", cmds) {
		if len(m.Command.Title) == 6 && m.Command.Title[:5] == "test-" {
			order = append(order, m.Command.Title)
		}
	}
	if !reflect.DeepEqual(order, []string{"test-a", "test-b", "test-c"}) {
		t.Errorf("tied entries = %v, want candidate order", order)
	}
}

func TestRank_Idempotent(t *testing.T) {
	t.Parallel()

	cmds := testCommands(20)
	for _, q := range []string{"", "c", "cmd1", "echo 1"} {
		if a, b := Rank(q, cmds), Rank(q, cmds); !reflect.DeepEqual(a, b) {
			t.Errorf("Rank(%q) not idempotent", q)
		}
	}
}

func TestRank_Fields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		query     string
		cmd       store.Command
		wantField Field
	}{
		{"title only", "dep", store.Command{Title: "deploy", Command: "kubectl apply"}, FieldTitle},
		{"command only", "kub", store.Command{Title: "deploy", Command: "kubectl apply"}, FieldCommand},
		{"tie goes to title", "test", store.Command{Title: "test", Command: "test"}, FieldTitle},
		{"better command", "make", store.Command{Title: "m-a-k-e-stuff", Command: "make"}, FieldCommand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ranked := Rank(tt.query, []store.Command{tt.cmd})
			if len(ranked) != 1 {
				t.Fatalf("got %d matches, want 1", len(ranked))
			}
			if ranked[0].Field != tt.wantField {
				t.Errorf("field = %v, want %v", ranked[0].Field, tt.wantField)
			}
			if len(ranked[0].MatchedIndexes) != len(tt.query) {
				t.Errorf("matched %d positions, want %d", len(ranked[0].MatchedIndexes), len(tt.query))
			}
		})
	}
}

func testCommands(n int) []store.Command {
	cmds := make([]store.Command, n)
	for i := range cmds {
		cmds[i] = store.Command{
			Title:   fmt.Sprintf("cmd%d", i),
			Command: fmt.Sprintf("echo %d", i),
		}
	}
	return cmds
}
