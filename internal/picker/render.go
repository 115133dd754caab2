package picker

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/raphi011/wut/internal/ui/styles"
)

// DefaultHeight is the number of entries shown when RenderOptions.Height is unset.
const DefaultHeight = 10

const helpText = "↑/↓ navigate • type to filter • enter run • esc cancel"

// RenderOptions controls the frame layout.
type RenderOptions struct {
	Height          int  // visible entries; DefaultHeight when <= 0
	Width           int  // truncate lines to this many cells; 0 disables
	ShowDescription bool // draw descriptions under their entries
}

// Render draws the state as a frame. It has no side effects.
func Render(s *State, opts RenderOptions) string {
	height := opts.Height
	if height <= 0 {
		height = DefaultHeight
	}

	var lines []string
	lines = append(lines,
		styles.PrimaryStyle.Render("> ")+s.Query()+styles.MutedStyle.Render("█"),
		styles.InfoStyle.Render(fmt.Sprintf("%d/%d", len(s.Ranked()), s.Total())),
	)

	ranked := s.Ranked()
	if len(ranked) == 0 {
		lines = append(lines, styles.MutedStyle.Render("  No matching commands"))
	} else {
		start, end := window(s.Cursor(), len(ranked), height)
		if start > 0 {
			lines = append(lines, styles.MutedStyle.Render(fmt.Sprintf("  ↑ %d more", start)))
		}
		for i := start; i < end; i++ {
			lines = append(lines, renderEntry(ranked[i], i == s.Cursor(), opts.ShowDescription)...)
		}
		if end < len(ranked) {
			lines = append(lines, styles.MutedStyle.Render(fmt.Sprintf("  ↓ %d more", len(ranked)-end)))
		}
	}

	lines = append(lines, "", styles.MutedStyle.Render(helpText))

	if opts.Width > 0 {
		for i, l := range lines {
			lines[i] = ansi.Truncate(l, opts.Width, "…")
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

// window returns the visible range [start, end) keeping cursor on screen.
func window(cursor, total, height int) (start, end int) {
	start = max(0, cursor-height+1)
	end = min(start+height, total)
	return start, end
}

func renderEntry(m Match, selected, showDescription bool) []string {
	marker := "  "
	titleStyle := styles.NormalStyle
	if selected {
		marker = styles.AccentStyle.Render("> ")
		titleStyle = styles.AccentStyle
	}

	title := titleStyle.Render(m.Command.Title)
	command := styles.MutedStyle.Render(m.Command.Command)
	if len(m.MatchedIndexes) > 0 {
		switch m.Field {
		case FieldTitle:
			title = highlight(m.Command.Title, m.MatchedIndexes, titleStyle)
		case FieldCommand:
			command = highlight(m.Command.Command, m.MatchedIndexes, styles.MutedStyle)
		}
	}

	lines := []string{marker + title + "  " + command}
	if showDescription && m.Command.Description != "" {
		lines = append(lines, "    "+styles.MutedStyle.Render(m.Command.Description))
	}
	return lines
}

// highlight renders text with the runes starting at the given byte offsets
// in the highlight style and everything else in base.
func highlight(text string, offsets []int, base lipgloss.Style) string {
	matched := make(map[int]bool, len(offsets))
	for _, o := range offsets {
		matched[o] = true
	}

	var b strings.Builder
	for i, r := range text {
		if matched[i] {
			b.WriteString(styles.HighlightStyle.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}
