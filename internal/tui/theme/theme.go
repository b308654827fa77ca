// Package theme provides shared colours and styles used across TUI packages.
// Keeping these in a standalone package avoids circular imports between the
// root tui package and its sub-packages (panels, components, etc.).
package theme

import lipgloss "charm.land/lipgloss/v2"

// Colour palette — Catppuccin Mocha, roughly.
var (
	ColorPrimary   = lipgloss.Color("#89b4fa") // blue
	ColorSecondary = lipgloss.Color("#a6e3a1") // green
	ColorSubtle    = lipgloss.Color("#585b70") // grey
	ColorHighlight = lipgloss.Color("#f9e2af") // yellow
	ColorError     = lipgloss.Color("#f38ba8") // red
	ColorFg        = lipgloss.Color("#cdd6f4") // light fg
	ColorMuted     = lipgloss.Color("#6c7086") // muted fg
	ColorBg        = lipgloss.Color("#1e1e2e") // dark bg
)

// Panel border styles.
var (
	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary)

	InactiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorSubtle)
)

// Title style for panel headers.
var TitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorPrimary).
	Padding(0, 1)

// Hero styles for the home screen masthead.
var (
	HeroNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	HeroTaglineStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Italic(true)
)

// Selector bar styles: the category choices above a switcher's panel.
var (
	SelectorActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorBg).
				Background(ColorPrimary).
				Padding(0, 1)

	SelectorStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)
)

// Help bar styles.
var (
	HelpBarBg = lipgloss.Color("#313244") // slightly lighter than bg

	HelpBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Background(HelpBarBg)

	HelpKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight).
			Background(HelpBarBg)
)

// List item styles.
var (
	SelectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSecondary)

	NormalItemStyle = lipgloss.NewStyle().
			Foreground(ColorFg)

	CursorStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	SectionHeadingStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorHighlight)
)

// Filter indicator style (shown when a sidebar filter is active but the
// input is hidden).
var FilterIndicatorStyle = lipgloss.NewStyle().
	Foreground(ColorHighlight).
	Italic(true)

// Code block style for example panels.
var CodeStyle = lipgloss.NewStyle().
	Foreground(ColorFg)

// Benchmark table styles.
var (
	BenchBarStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	BenchLeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSecondary)

	BenchRowStyle = lipgloss.NewStyle().
			Foreground(ColorFg)
)

// Truncate shortens a string to fit within the given width, accounting for
// ANSI escape sequences by using lipgloss.Width for measurement.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	w := lipgloss.Width(s)
	if w <= maxWidth {
		return s
	}
	// Brute-force truncation: trim runes until we fit.
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + "..."
		if lipgloss.Width(candidate) <= maxWidth {
			return candidate
		}
	}
	return ""
}
