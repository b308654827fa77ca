package tui

import "charm.land/bubbles/v2/key"

// GlobalKeyMap contains keybindings available in every context.
type GlobalKeyMap struct {
	Quit     key.Binding
	Help     key.Binding
	Tab      key.Binding
	ShiftTab key.Binding
	Reload   key.Binding
	Docs     key.Binding
	Home     key.Binding
}

// DefaultGlobalKeyMap returns the default global keybindings.
func DefaultGlobalKeyMap() GlobalKeyMap {
	return GlobalKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next panel"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev panel"),
		),
		Reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload content"),
		),
		Docs: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "docs"),
		),
		Home: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "home"),
		),
	}
}

// DocsKeyMap contains keybindings specific to the docs screen.
type DocsKeyMap struct {
	Filter key.Binding
	Back   key.Binding
	Enter  key.Binding
}

// DefaultDocsKeyMap returns the default docs-screen keybindings.
func DefaultDocsKeyMap() DocsKeyMap {
	return DocsKeyMap{
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
	}
}
