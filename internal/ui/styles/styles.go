// Package styles provides shared lipgloss styles for UI components.
//
// Colors come from the active Theme (see Init); the picker, prompts and
// static tables all render through the variables below.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colors of the active theme
var (
	// Primary is the main accent color (prompt, table borders)
	Primary color.Color = lipgloss.Color("62")

	// Accent is the highlight color for the selected entry and matched characters
	Accent color.Color = lipgloss.Color("212")

	// Success is used for confirmations
	Success color.Color = lipgloss.Color("82")

	// Error is used for error messages
	Error color.Color = lipgloss.Color("196")

	// Muted is used for command strings, descriptions and hints
	Muted color.Color = lipgloss.Color("240")

	// Normal is the standard text color
	Normal color.Color = lipgloss.Color("252")

	// Info is used for informational text
	Info color.Color = lipgloss.Color("244")
)

// Common styles
var (
	PrimaryStyle = lipgloss.NewStyle().Foreground(Primary)

	// AccentStyle applies the accent color with bold
	AccentStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)
	NormalStyle  = lipgloss.NewStyle().Foreground(Normal)

	// InfoStyle applies the info color with italic
	InfoStyle = lipgloss.NewStyle().
			Foreground(Info).
			Italic(true)
)

// Text highlighting styles
var (
	// HighlightStyle for matched characters (accent, bold, underline)
	HighlightStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true).
			Underline(true)
)
