package styles

import (
	"image/color"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-isatty"

	"github.com/raphi011/wut/internal/config"
)

// Theme is the palette the picker, prompts and tables render with.
type Theme struct {
	Primary color.Color // prompt, borders
	Accent  color.Color // selected entry, matched characters
	Success color.Color
	Error   color.Color
	Muted   color.Color // command strings, descriptions, hints
	Normal  color.Color
	Info    color.Color
}

// palette builds a Theme from colors in Primary, Accent, Success, Error,
// Muted, Normal, Info order.
func palette(c ...string) *Theme {
	return &Theme{
		Primary: lipgloss.Color(c[0]),
		Accent:  lipgloss.Color(c[1]),
		Success: lipgloss.Color(c[2]),
		Error:   lipgloss.Color(c[3]),
		Muted:   lipgloss.Color(c[4]),
		Normal:  lipgloss.Color(c[5]),
		Info:    lipgloss.Color(c[6]),
	}
}

// variants of a preset; a nil variant falls back to the other one.
type variants struct {
	dark, light *Theme
}

var noColor = &Theme{
	Primary: lipgloss.NoColor{},
	Accent:  lipgloss.NoColor{},
	Success: lipgloss.NoColor{},
	Error:   lipgloss.NoColor{},
	Muted:   lipgloss.NoColor{},
	Normal:  lipgloss.NoColor{},
	Info:    lipgloss.NoColor{},
}

// presets are keyed by config.ValidThemeNames.
var presets = map[string]variants{
	"none":    {dark: noColor, light: noColor},
	"default": {dark: palette("62", "212", "82", "196", "240", "252", "244")},
	"dracula": {dark: palette("#bd93f9", "#ff79c6", "#50fa7b", "#ff5555", "#6272a4", "#f8f8f2", "#8be9fd")},
	"nord": {
		dark:  palette("#88c0d0", "#b48ead", "#a3be8c", "#bf616a", "#4c566a", "#eceff4", "#81a1c1"),
		light: palette("#5e81ac", "#b48ead", "#a3be8c", "#bf616a", "#9a9a9a", "#2e3440", "#81a1c1"),
	},
	"gruvbox": {
		dark:  palette("#83a598", "#d3869b", "#b8bb26", "#fb4934", "#665c54", "#ebdbb2", "#8ec07c"),
		light: palette("#076678", "#8f3f71", "#79740e", "#9d0006", "#928374", "#3c3836", "#427b58"),
	},
	"catppuccin": {
		dark:  palette("#89b4fa", "#f5c2e7", "#a6e3a1", "#f38ba8", "#6c7086", "#cdd6f4", "#94e2d5"),
		light: palette("#1e66f5", "#ea76cb", "#40a02b", "#d20f39", "#9ca0b0", "#4c4f69", "#179299"),
	},
}

var currentTheme = *presets["default"].dark

// Current returns the active theme.
func Current() Theme {
	return currentTheme
}

// Init activates the theme described by cfg and rebuilds the package
// styles. Call it after loading config and before rendering anything.
// cfg is expected to have passed config validation; unknown names fall
// back to the default preset.
func Init(cfg config.ThemeConfig) {
	theme := selectTheme(cfg)

	overrides := []struct {
		value string
		dst   *color.Color
	}{
		{cfg.Primary, &theme.Primary},
		{cfg.Accent, &theme.Accent},
		{cfg.Success, &theme.Success},
		{cfg.Error, &theme.Error},
		{cfg.Muted, &theme.Muted},
		{cfg.Normal, &theme.Normal},
		{cfg.Info, &theme.Info},
	}
	for _, o := range overrides {
		if o.value != "" {
			*o.dst = lipgloss.Color(o.value)
		}
	}

	currentTheme = theme
	applyTheme(theme)
}

func selectTheme(cfg config.ThemeConfig) Theme {
	v, ok := presets[cfg.Name]
	if !ok {
		v = presets["default"]
	}

	dark := true
	switch cfg.Mode {
	case "light":
		dark = false
	case "dark":
	default:
		// Querying the background only works on a terminal.
		if isatty.IsTerminal(os.Stdin.Fd()) {
			dark = lipgloss.HasDarkBackground(os.Stdin, os.Stderr)
		}
	}

	first, second := v.dark, v.light
	if !dark {
		first, second = second, first
	}
	if first == nil {
		first = second
	}
	return *first
}

func applyTheme(t Theme) {
	Primary = t.Primary
	Accent = t.Accent
	Success = t.Success
	Error = t.Error
	Muted = t.Muted
	Normal = t.Normal
	Info = t.Info

	PrimaryStyle = lipgloss.NewStyle().Foreground(t.Primary)
	AccentStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(t.Success)
	ErrorStyle = lipgloss.NewStyle().Foreground(t.Error)
	MutedStyle = lipgloss.NewStyle().Foreground(t.Muted)
	NormalStyle = lipgloss.NewStyle().Foreground(t.Normal)
	InfoStyle = lipgloss.NewStyle().Foreground(t.Info).Italic(true)
	HighlightStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Underline(true)
}
