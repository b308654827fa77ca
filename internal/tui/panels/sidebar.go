package panels

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/mgale/docsurf/internal/site"
	"github.com/mgale/docsurf/internal/tui/theme"
)

// PageSelectedMsg is emitted when the user presses Enter on a sidebar page.
type PageSelectedMsg struct {
	Page site.Page
}

// sidebarRow is one visible line: either a section heading or a page.
type sidebarRow struct {
	heading string
	page    *site.Page
}

// Sidebar displays the documentation tree: section headings with their
// pages underneath. The cursor only lands on pages; headings are skipped.
type Sidebar struct {
	sections []site.Section
	rows     []sidebarRow
	cursor   int // index into rows; always points at a page row
	filter   string

	up    key.Binding
	down  key.Binding
	enter key.Binding
	home  key.Binding
	end   key.Binding
}

// NewSidebar creates a sidebar over the given sections.
func NewSidebar(sections []site.Section) Sidebar {
	s := Sidebar{
		sections: sections,
		up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "down"),
		),
		enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		home: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		end: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
	}
	s.rebuild()
	return s
}

// SetFilter narrows the visible pages to those whose title contains the
// given string (case-insensitive). An empty filter shows everything.
func (s Sidebar) SetFilter(filter string) Sidebar {
	s.filter = filter
	s.rebuild()
	return s
}

// Filter returns the current filter string.
func (s Sidebar) Filter() string {
	return s.filter
}

// rebuild flattens the section tree into visible rows, applying the
// filter, and clamps the cursor onto a page row.
func (s *Sidebar) rebuild() {
	s.rows = s.rows[:0]
	needle := strings.ToLower(s.filter)
	for si := range s.sections {
		var pages []*site.Page
		for pi := range s.sections[si].Pages {
			p := &s.sections[si].Pages[pi]
			if needle == "" || strings.Contains(strings.ToLower(p.Title), needle) {
				pages = append(pages, p)
			}
		}
		if len(pages) == 0 {
			continue
		}
		s.rows = append(s.rows, sidebarRow{heading: s.sections[si].Title})
		for _, p := range pages {
			s.rows = append(s.rows, sidebarRow{page: p})
		}
	}
	s.cursor = s.nearestPageRow(s.cursor)
}

// nearestPageRow returns the index of the page row closest to from,
// searching forward first. Returns -1 when no page rows exist.
func (s *Sidebar) nearestPageRow(from int) int {
	if len(s.rows) == 0 {
		return -1
	}
	if from < 0 {
		from = 0
	}
	if from >= len(s.rows) {
		from = len(s.rows) - 1
	}
	for i := from; i < len(s.rows); i++ {
		if s.rows[i].page != nil {
			return i
		}
	}
	for i := from - 1; i >= 0; i-- {
		if s.rows[i].page != nil {
			return i
		}
	}
	return -1
}

// Selected returns the page under the cursor, or nil when the (possibly
// filtered) tree is empty.
func (s Sidebar) Selected() *site.Page {
	if s.cursor < 0 || s.cursor >= len(s.rows) {
		return nil
	}
	return s.rows[s.cursor].page
}

// VisiblePageCount returns how many pages the current filter leaves visible.
func (s Sidebar) VisiblePageCount() int {
	n := 0
	for _, r := range s.rows {
		if r.page != nil {
			n++
		}
	}
	return n
}

// CursorDown moves the cursor to the next page row.
func (s Sidebar) CursorDown() Sidebar {
	for i := s.cursor + 1; i < len(s.rows); i++ {
		if s.rows[i].page != nil {
			s.cursor = i
			break
		}
	}
	return s
}

// CursorUp moves the cursor to the previous page row.
func (s Sidebar) CursorUp() Sidebar {
	for i := s.cursor - 1; i >= 0; i-- {
		if s.rows[i].page != nil {
			s.cursor = i
			break
		}
	}
	return s
}

// CursorHome moves the cursor to the first page row.
func (s Sidebar) CursorHome() Sidebar {
	s.cursor = s.nearestPageRow(0)
	return s
}

// CursorEnd moves the cursor to the last page row.
func (s Sidebar) CursorEnd() Sidebar {
	for i := len(s.rows) - 1; i >= 0; i-- {
		if s.rows[i].page != nil {
			s.cursor = i
			break
		}
	}
	return s
}

// Update handles key events for the sidebar.
func (s Sidebar) Update(msg tea.Msg) (Panel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		return s.handleKey(msg)
	}
	return s, nil
}

func (s Sidebar) handleKey(msg tea.KeyPressMsg) (Panel, tea.Cmd) {
	switch {
	case key.Matches(msg, s.down):
		return s.CursorDown(), nil

	case key.Matches(msg, s.up):
		return s.CursorUp(), nil

	case key.Matches(msg, s.home):
		return s.CursorHome(), nil

	case key.Matches(msg, s.end):
		return s.CursorEnd(), nil

	case key.Matches(msg, s.enter):
		if p := s.Selected(); p != nil {
			page := *p
			return s, func() tea.Msg { return PageSelectedMsg{Page: page} }
		}
	}
	return s, nil
}

// View renders the sidebar panel.
func (s Sidebar) View(width, height int, focused bool) string {
	style := theme.InactiveBorderStyle
	titleColor := theme.ColorSubtle
	if focused {
		style = theme.ActiveBorderStyle
		titleColor = theme.ColorPrimary
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(titleColor).
		Render(" Documentation ")

	innerWidth := width - 2
	innerHeight := height - 2
	if innerWidth < 0 {
		innerWidth = 0
	}
	if innerHeight < 0 {
		innerHeight = 0
	}

	var lines []string
	if s.filter != "" {
		lines = append(lines, theme.FilterIndicatorStyle.Render("filter: "+s.filter))
	}

	if len(s.rows) == 0 {
		lines = append(lines, theme.NormalItemStyle.Render("No pages match"))
	}

	// Keep the cursor in view by windowing the rows.
	avail := innerHeight - len(lines)
	start := 0
	if s.cursor >= avail && avail > 0 {
		start = s.cursor - avail + 1
	}
	for i := start; i < len(s.rows) && len(lines) < innerHeight; i++ {
		r := s.rows[i]
		if r.page == nil {
			lines = append(lines, theme.SectionHeadingStyle.Render(theme.Truncate(r.heading, innerWidth)))
			continue
		}
		name := theme.Truncate(r.page.Title, innerWidth-4)
		if i == s.cursor {
			lines = append(lines, "  "+theme.CursorStyle.Render("> ")+theme.SelectedItemStyle.Render(name))
		} else {
			lines = append(lines, "    "+theme.NormalItemStyle.Render(name))
		}
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

// HelpBindings returns the key hints for the sidebar.
func (s Sidebar) HelpBindings() []HelpBinding {
	return []HelpBinding{
		{Key: "j/k", Desc: "navigate"},
		{Key: "enter", Desc: "open page"},
		{Key: "/", Desc: "filter"},
		{Key: "g/G", Desc: "top/bottom"},
		{Key: "tab", Desc: "switch panel"},
		{Key: "q", Desc: "quit"},
	}
}
