package tui

// This file re-exports styles and colours from the shared theme package so
// that code within the tui package reads naturally. New code should import
// theme directly when possible.

import "github.com/mgale/docsurf/internal/tui/theme"

// Colour aliases.
var (
	colorSubtle = theme.ColorSubtle
	colorMuted  = theme.ColorMuted
)

// Hero styles for the home masthead.
var (
	HeroNameStyle    = theme.HeroNameStyle
	HeroTaglineStyle = theme.HeroTaglineStyle
)

// Help bar styles.
var (
	HelpBarStyle = theme.HelpBarStyle
	HelpKeyStyle = theme.HelpKeyStyle
)
