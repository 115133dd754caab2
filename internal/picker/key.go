package picker

import (
	"strings"
	"unicode"

	tea "charm.land/bubbletea/v2"
)

// KeyKind is a key event understood by the state machine.
type KeyKind int

const (
	KeyOther KeyKind = iota
	KeyChar
	KeyBackspace
	KeyUp
	KeyDown
	KeyEnter
	KeyCancel
)

// Key is a decoded key event. Text is set for KeyChar.
type Key struct {
	Kind KeyKind
	Text string
}

// KeyFromMsg maps a bubbletea key press to a Key.
func KeyFromMsg(msg tea.KeyPressMsg) Key {
	switch msg.String() {
	case "enter":
		return Key{Kind: KeyEnter}
	case "esc", "ctrl+c":
		return Key{Kind: KeyCancel}
	case "up", "ctrl+p":
		return Key{Kind: KeyUp}
	case "down", "ctrl+n":
		return Key{Kind: KeyDown}
	case "backspace":
		return Key{Kind: KeyBackspace}
	}

	if msg.Mod&(tea.ModCtrl|tea.ModAlt) != 0 {
		return Key{Kind: KeyOther}
	}
	if text := printable(msg.Text); text != "" {
		return Key{Kind: KeyChar, Text: text}
	}
	return Key{Kind: KeyOther}
}

// printable drops control characters, keeping what can be typed into the query.
func printable(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, s)
}
