package components

import lipgloss "charm.land/lipgloss/v2"

// Colour palette — matches the parent tui package theme.
var (
	colorPrimary   = lipgloss.Color("#89b4fa") // blue
	colorError     = lipgloss.Color("#f38ba8") // red
	colorHighlight = lipgloss.Color("#f9e2af") // yellow
	colorMuted     = lipgloss.Color("#6c7086") // muted fg
	colorBg        = lipgloss.Color("#1e1e2e") // dark bg
)

// Filter bar styles.
var (
	filterPrompt = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true)

	filterHint = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// Toast styles.
var (
	toastNormal = lipgloss.NewStyle().
			Foreground(colorBg).
			Background(colorPrimary).
			Bold(true).
			Padding(0, 1)

	toastError = lipgloss.NewStyle().
			Foreground(colorBg).
			Background(colorError).
			Bold(true).
			Padding(0, 1)
)
