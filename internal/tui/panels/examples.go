package panels

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/mgale/docsurf/internal/site"
	"github.com/mgale/docsurf/internal/tui/switcher"
	"github.com/mgale/docsurf/internal/tui/theme"
)

// ExampleDeck is the home-screen code example switcher: a selector bar of
// categories above the active category's code panel. The active-state
// bookkeeping lives in the embedded switcher instance.
type ExampleDeck struct {
	sw *switcher.Switcher

	prev   key.Binding
	next   key.Binding
	direct key.Binding
}

// NewExampleDeck builds a deck from the site's example categories. The
// first category starts active.
func NewExampleDeck(examples []site.Example) ExampleDeck {
	sels := make([]switcher.Selector, len(examples))
	pans := make([]switcher.Panel, len(examples))
	for i, e := range examples {
		sels[i] = switcher.Selector{Key: e.Key, Label: e.Label}
		pans[i] = switcher.Panel{Key: e.Key, Content: strings.TrimSpace(e.Code)}
	}
	return ExampleDeck{
		sw:     switcher.New(sels, pans),
		prev:   prevBinding(),
		next:   nextBinding(),
		direct: directBinding(),
	}
}

// ActiveKey returns the active category key.
func (d ExampleDeck) ActiveKey() string {
	return d.sw.ActiveKey()
}

// Select activates the given category key.
func (d ExampleDeck) Select(key string) ExampleDeck {
	d.sw.Select(key)
	return d
}

// Update handles key events for the deck.
func (d ExampleDeck) Update(msg tea.Msg) (Panel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch {
		case key.Matches(msg, d.next):
			d.sw.Next()
		case key.Matches(msg, d.prev):
			d.sw.Prev()
		case key.Matches(msg, d.direct):
			if n, err := strconv.Atoi(msg.String()); err == nil {
				d.sw.SelectIndex(n - 1)
			}
		}
	}
	return d, nil
}

// View renders the selector bar and the active code panel.
func (d ExampleDeck) View(width, height int, focused bool) string {
	style := theme.InactiveBorderStyle
	titleColor := theme.ColorSubtle
	if focused {
		style = theme.ActiveBorderStyle
		titleColor = theme.ColorPrimary
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(titleColor).
		Render(" Examples ")

	innerWidth := width - 2
	innerHeight := height - 2
	if innerWidth < 0 {
		innerWidth = 0
	}
	if innerHeight < 0 {
		innerHeight = 0
	}

	lines := []string{selectorBar(d.sw, innerWidth), ""}

	if p := d.sw.ActivePanel(); p != nil {
		for _, line := range strings.Split(p.Content, "\n") {
			lines = append(lines, theme.CodeStyle.Render(theme.Truncate(line, innerWidth)))
		}
	}

	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}
	for len(lines) < innerHeight {
		lines = append(lines, "")
	}

	content := strings.Join(lines, "\n")

	return style.
		Width(innerWidth).
		Height(innerHeight).
		Render(title + "\n" + content)
}

// HelpBindings returns the key hints for the deck.
func (d ExampleDeck) HelpBindings() []HelpBinding {
	return deckHelpBindings()
}

// selectorBar renders a switcher's category choices on one line, the
// active one highlighted.
func selectorBar(sw *switcher.Switcher, width int) string {
	var parts []string
	for _, sel := range sw.Selectors() {
		if sel.Active {
			parts = append(parts, theme.SelectorActiveStyle.Render(sel.Label))
		} else {
			parts = append(parts, theme.SelectorStyle.Render(sel.Label))
		}
	}
	return theme.Truncate(strings.Join(parts, " "), width)
}

// Shared deck keybindings: both home-screen decks navigate the same way.

func prevBinding() key.Binding {
	return key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/left", "prev category"),
	)
}

func nextBinding() key.Binding {
	return key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/right", "next category"),
	)
}

func directBinding() key.Binding {
	return key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "jump to category"),
	)
}

func deckHelpBindings() []HelpBinding {
	return []HelpBinding{
		{Key: "h/l", Desc: "switch category"},
		{Key: "1-9", Desc: "jump"},
		{Key: "tab", Desc: "switch panel"},
		{Key: "d", Desc: "docs"},
		{Key: "q", Desc: "quit"},
	}
}
