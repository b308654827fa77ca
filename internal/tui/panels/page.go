package panels

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/mgale/docsurf/internal/site"
	"github.com/mgale/docsurf/internal/tui/theme"
)

// pageStep is how far pgup/pgdn move the scroll offset.
const pageStep = 10

// PageView shows one documentation page in a scrollable panel. It is held
// by pointer so the scroll clamp applied during render sticks.
type PageView struct {
	page    *site.Page
	scrollY int

	up       key.Binding
	down     key.Binding
	home     key.Binding
	end      key.Binding
	pageUp   key.Binding
	pageDown key.Binding
}

// NewPageView creates an empty page viewer.
func NewPageView() *PageView {
	return &PageView{
		up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "scroll up"),
		),
		down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "scroll down"),
		),
		home: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		end: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		pageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "page up"),
		),
		pageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", "page down"),
		),
	}
}

// SetPage replaces the displayed page and resets the scroll position.
func (p *PageView) SetPage(page site.Page) {
	p.page = &page
	p.scrollY = 0
}

// Page returns the currently displayed page, or nil.
func (p *PageView) Page() *site.Page {
	return p.page
}

// lineCount returns how many lines the current page body has.
func (p *PageView) lineCount() int {
	if p.page == nil {
		return 0
	}
	return strings.Count(p.page.Body, "\n") + 1
}

// ScrollDown moves the view one line towards the end.
func (p *PageView) ScrollDown() {
	p.scrollY++
}

// ScrollUp moves the view one line towards the top.
func (p *PageView) ScrollUp() {
	if p.scrollY > 0 {
		p.scrollY--
	}
}

// ScrollTop jumps to the top of the page.
func (p *PageView) ScrollTop() {
	p.scrollY = 0
}

// ScrollBottom jumps to the end of the page. The offset lands on the line
// count and is clamped to the last full screen during render.
func (p *PageView) ScrollBottom() {
	p.scrollY = p.lineCount()
}

// ScrollPageDown moves the view a screenful towards the end.
func (p *PageView) ScrollPageDown() {
	p.scrollY += pageStep
}

// ScrollPageUp moves the view a screenful towards the top.
func (p *PageView) ScrollPageUp() {
	p.scrollY -= pageStep
	if p.scrollY < 0 {
		p.scrollY = 0
	}
}

// ScrollOffset returns the current scroll offset.
func (p *PageView) ScrollOffset() int {
	return p.scrollY
}

// Update handles key events for the page viewer.
func (p *PageView) Update(msg tea.Msg) (Panel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch {
		case key.Matches(msg, p.down):
			p.ScrollDown()
		case key.Matches(msg, p.up):
			p.ScrollUp()
		case key.Matches(msg, p.home):
			p.ScrollTop()
		case key.Matches(msg, p.end):
			p.ScrollBottom()
		case key.Matches(msg, p.pageDown):
			p.ScrollPageDown()
		case key.Matches(msg, p.pageUp):
			p.ScrollPageUp()
		}
	}
	return p, nil
}

// View renders the page panel. The stored scroll offset is clamped here,
// where the viewport height is known, so scrolling back up after jumping
// past the end takes effect on the very next keypress.
func (p *PageView) View(width, height int, focused bool) string {
	style := theme.InactiveBorderStyle
	titleColor := theme.ColorSubtle
	if focused {
		style = theme.ActiveBorderStyle
		titleColor = theme.ColorPrimary
	}

	name := "Page"
	if p.page != nil {
		name = p.page.Title
	}
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(titleColor).
		Render(" " + name + " ")

	innerWidth := width - 2
	innerHeight := height - 2
	if innerWidth < 0 {
		innerWidth = 0
	}
	if innerHeight < 0 {
		innerHeight = 0
	}

	var body []string
	if p.page == nil {
		body = []string{theme.NormalItemStyle.Render("Select a page from the sidebar")}
	} else {
		for _, line := range strings.Split(p.page.Body, "\n") {
			body = append(body, theme.Truncate(line, innerWidth))
		}
	}

	maxScroll := len(body) - innerHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	if p.scrollY > maxScroll {
		p.scrollY = maxScroll
	}

	lines := body[p.scrollY:]
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}
	out := make([]string, len(lines))
	copy(out, lines)
	for len(out) < innerHeight {
		out = append(out, "")
	}

	content := strings.Join(out, "\n")

	return style.
		Width(innerWidth).
		Height(innerHeight).
		Render(title + "\n" + content)
}

// HelpBindings returns the key hints for the page viewer.
func (p *PageView) HelpBindings() []HelpBinding {
	return []HelpBinding{
		{Key: "j/k", Desc: "scroll"},
		{Key: "g/G", Desc: "top/bottom"},
		{Key: "pgup/pgdn", Desc: "page"},
		{Key: "esc", Desc: "back"},
		{Key: "q", Desc: "quit"},
	}
}
