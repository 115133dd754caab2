package picker

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyMsg(key string) tea.KeyPressMsg {
	switch key {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case "ctrl+n":
		return tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl}
	case "ctrl+p":
		return tea.KeyPressMsg{Code: 'p', Mod: tea.ModCtrl}
	case "alt+x":
		return tea.KeyPressMsg{Code: 'x', Mod: tea.ModAlt}
	default:
		r := []rune(key)
		return tea.KeyPressMsg{Code: r[0], Text: key}
	}
}

func TestKeyFromMsg(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  string
		want Key
	}{
		{"enter", Key{Kind: KeyEnter}},
		{"esc", Key{Kind: KeyCancel}},
		{"ctrl+c", Key{Kind: KeyCancel}},
		{"up", Key{Kind: KeyUp}},
		{"ctrl+p", Key{Kind: KeyUp}},
		{"down", Key{Kind: KeyDown}},
		{"ctrl+n", Key{Kind: KeyDown}},
		{"backspace", Key{Kind: KeyBackspace}},
		{"a", Key{Kind: KeyChar, Text: "a"}},
		{"Z", Key{Kind: KeyChar, Text: "Z"}},
		{"é", Key{Kind: KeyChar, Text: "é"}},
		{"space", Key{Kind: KeyChar, Text: " "}},
		{"tab", Key{Kind: KeyOther}},
		{"alt+x", Key{Kind: KeyOther}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()

			if got := KeyFromMsg(keyMsg(tt.key)); got != tt.want {
				t.Errorf("KeyFromMsg(%s) = %+v, want %+v", tt.key, got, tt.want)
			}
		})
	}
}
