// Package static provides non-interactive terminal output components,
// such as the command listing printed by "wut dis".
package static

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/raphi011/wut/internal/store"
	"github.com/raphi011/wut/internal/ui/styles"
)

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which automatically
// calculates column widths based on content. No borders are rendered.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}

// CommandTableHeaders returns the headers matching CommandTableRow.
func CommandTableHeaders(withCommand bool) []string {
	if withCommand {
		return []string{"TITLE", "COMMAND", "DESCRIPTION"}
	}
	return []string{"TITLE", "DESCRIPTION"}
}

// CommandTableRow formats a stored command as a table row.
func CommandTableRow(c store.Command, withCommand bool) []string {
	desc := c.Description
	if desc == "" {
		desc = "-"
	}
	desc = styles.MutedStyle.Render(desc)

	if withCommand {
		return []string{c.Title, c.Command, desc}
	}
	return []string{c.Title, desc}
}

// RenderCommands renders cmds as a table, or "" when there are none.
func RenderCommands(cmds []store.Command, withCommand bool) string {
	rows := make([][]string, len(cmds))
	for i, c := range cmds {
		rows[i] = CommandTableRow(c, withCommand)
	}
	return RenderTable(CommandTableHeaders(withCommand), rows)
}
