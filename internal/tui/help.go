package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/mgale/docsurf/internal/tui/theme"
)

// helpSection groups keybindings under a section heading.
type helpSection struct {
	title    string
	bindings []helpEntry
}

// helpEntry is a single key-description pair.
type helpEntry struct {
	key  string
	desc string
}

// HelpModal is a full-screen overlay showing all keybindings. It is held
// by pointer so the scroll clamp applied during render sticks.
type HelpModal struct {
	active  bool
	scrollY int
}

// NewHelpModal creates a new (inactive) help modal.
func NewHelpModal() *HelpModal {
	return &HelpModal{}
}

// Toggle switches the help modal on or off.
func (h *HelpModal) Toggle() {
	h.active = !h.active
	if h.active {
		h.scrollY = 0
	}
}

// Active returns whether the help modal is currently visible.
func (h *HelpModal) Active() bool {
	return h.active
}

// Update handles key events when the help modal is active.
func (h *HelpModal) Update(msg tea.Msg) tea.Cmd {
	if !h.active {
		return nil
	}

	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("esc", "?", "q"))):
			h.active = false
		case key.Matches(msg, key.NewBinding(key.WithKeys("j", "down"))):
			h.scrollY++
		case key.Matches(msg, key.NewBinding(key.WithKeys("k", "up"))):
			if h.scrollY > 0 {
				h.scrollY--
			}
		case key.Matches(msg, key.NewBinding(key.WithKeys("g", "home"))):
			h.scrollY = 0
		case key.Matches(msg, key.NewBinding(key.WithKeys("G", "end"))):
			// Clamped against the content height in View.
			h.scrollY = 999
		}
	}

	return nil
}

// View renders the help modal as a box suitable for overlay on the existing UI.
// The stored scroll offset is clamped here, where the viewport height is
// known, so scrolling back up after jumping to the end works immediately.
func (h *HelpModal) View(width, height int) string {
	if !h.active {
		return ""
	}

	sections := helpSections()

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorPrimary)

	keyStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorHighlight).
		Width(12).
		Align(lipgloss.Right)

	descStyle := lipgloss.NewStyle().
		Foreground(theme.ColorFg)

	separatorStyle := lipgloss.NewStyle().
		Foreground(theme.ColorSubtle)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorPrimary).
		Align(lipgloss.Center)

	hintStyle := lipgloss.NewStyle().
		Foreground(theme.ColorMuted).
		Align(lipgloss.Center)

	// Content width for the help box.
	contentWidth := 44
	if width < contentWidth+6 {
		contentWidth = width - 6
	}
	if contentWidth < 20 {
		contentWidth = 20
	}

	// Build all lines.
	var lines []string
	lines = append(lines, titleStyle.Width(contentWidth).Render("Keybindings"))
	lines = append(lines, "")

	for i, section := range sections {
		titleLen := len(section.title) + 2
		dashCount := contentWidth - titleLen
		if dashCount < 2 {
			dashCount = 2
		}
		header := separatorStyle.Render("─ ") +
			sectionStyle.Render(section.title) +
			separatorStyle.Render(" "+strings.Repeat("─", dashCount-1))
		lines = append(lines, header)

		for _, entry := range section.bindings {
			lines = append(lines, keyStyle.Render(entry.key)+"  "+descStyle.Render(entry.desc))
		}

		if i < len(sections)-1 {
			lines = append(lines, "")
		}
	}

	lines = append(lines, "")
	lines = append(lines, hintStyle.Width(contentWidth).Render("esc/? close  j/k scroll"))

	totalLines := len(lines)

	// Available height for content inside the box (border + padding takes space).
	availLines := height - 8
	if availLines < 5 {
		availLines = 5
	}

	// Clamp scroll.
	maxScroll := totalLines - availLines
	if maxScroll < 0 {
		maxScroll = 0
	}
	if h.scrollY > maxScroll {
		h.scrollY = maxScroll
	}

	start := h.scrollY
	end := start + availLines
	if end > totalLines {
		end = totalLines
	}
	visibleLines := lines[start:end]

	if h.scrollY > 0 {
		indicator := hintStyle.Width(contentWidth).Render(fmt.Sprintf("  (%d more above)", h.scrollY))
		visibleLines = append([]string{indicator}, visibleLines...)
	}
	if end < totalLines {
		indicator := hintStyle.Width(contentWidth).Render(fmt.Sprintf("  (%d more below)", totalLines-end))
		visibleLines = append(visibleLines, indicator)
	}

	inner := strings.Join(visibleLines, "\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ColorPrimary).
		Padding(1, 2).
		Background(theme.ColorBg).
		Width(contentWidth + 4).
		Render(inner)
}

// helpSections returns all help sections with their keybindings.
func helpSections() []helpSection {
	return []helpSection{
		{
			title: "Screens",
			bindings: []helpEntry{
				{"w", "Home (examples & benchmarks)"},
				{"d", "Documentation"},
				{"Tab", "Next panel"},
				{"Shift+Tab", "Previous panel"},
			},
		},
		{
			title: "Home Decks",
			bindings: []helpEntry{
				{"h/l", "Previous/next category"},
				{"←/→", "Previous/next category"},
				{"1-9", "Jump to category"},
			},
		},
		{
			title: "Sidebar",
			bindings: []helpEntry{
				{"j/k", "Move up/down"},
				{"g/G", "Top/bottom"},
				{"Enter", "Open page"},
				{"/", "Filter pages"},
				{"Esc", "Clear filter / go home"},
			},
		},
		{
			title: "Page",
			bindings: []helpEntry{
				{"j/k", "Scroll"},
				{"g/G", "Top/bottom"},
				{"PgUp/PgDn", "Page up/down"},
				{"Esc", "Back to sidebar"},
			},
		},
		{
			title: "Global",
			bindings: []helpEntry{
				{"Ctrl+R", "Reload content"},
				{"?", "Toggle help"},
				{"q", "Quit"},
			},
		},
	}
}
