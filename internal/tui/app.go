package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/mgale/docsurf/internal/config"
	"github.com/mgale/docsurf/internal/site"
	"github.com/mgale/docsurf/internal/tui/components"
	"github.com/mgale/docsurf/internal/tui/panels"
)

// Screen identifies which top-level screen is showing.
type Screen int

const (
	ScreenHome Screen = iota // landing: example + benchmark decks
	ScreenDocs               // sidebar + page viewer
)

// Each screen has two focusable panels, cycled with tab.
const panelsPerScreen = 2

// Home-screen focus slots.
const (
	focusExamples = iota
	focusBenchmarks
)

// Docs-screen focus slots.
const (
	focusSidebar = iota
	focusPage
)

// App is the root bubbletea model.
type App struct {
	config *config.Config
	bundle *site.Bundle

	screen        Screen
	homeFocus     int
	docsFocus     int
	width, height int

	// Sub-model panels.
	examples   panels.ExampleDeck
	benchmarks panels.BenchmarkDeck
	sidebar    panels.Sidebar
	pageView   *panels.PageView

	// Overlays and notifications.
	filter components.Filter
	toast  components.Toast
	help   *HelpModal

	// Keymaps.
	globalKeys GlobalKeyMap
	docsKeys   DocsKeyMap
}

// NewApp creates the root model over a loaded content bundle.
func NewApp(cfg *config.Config, bundle *site.Bundle) App {
	screen := ScreenHome
	if cfg.Viewer.Start == config.ScreenDocs {
		screen = ScreenDocs
	}
	return App{
		config:     cfg,
		bundle:     bundle,
		screen:     screen,
		examples:   panels.NewExampleDeck(bundle.Examples),
		benchmarks: panels.NewBenchmarkDeck(bundle.Benchmarks),
		sidebar:    panels.NewSidebar(bundle.Sections),
		pageView:   panels.NewPageView(),
		help:       NewHelpModal(),
		globalKeys: DefaultGlobalKeyMap(),
		docsKeys:   DefaultDocsKeyMap(),
	}
}

// Init performs no startup work; the bundle is loaded before the program runs.
func (m App) Init() tea.Cmd {
	return nil
}

// Update handles all incoming messages.
func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case panels.PageSelectedMsg:
		m.pageView.SetPage(msg.Page)
		m.docsFocus = focusPage
		return m, nil

	case components.FilterChanged:
		m.sidebar = m.sidebar.SetFilter(msg.Value)
		return m, nil

	case components.FilterAccepted:
		m.sidebar = m.sidebar.SetFilter(msg.Value)
		return m, nil

	case components.FilterCancelled:
		m.sidebar = m.sidebar.SetFilter("")
		return m, nil

	case bundleReloadedMsg:
		return m.applyBundle(msg.bundle)

	case errMsg:
		var cmd tea.Cmd
		m.toast, cmd = m.toast.Show("Error: "+msg.err.Error(), true)
		return m, cmd
	}

	// Forward remaining messages (toast timer, textinput blink) to the
	// components that own them.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.toast, cmd = m.toast.Update(msg)
	cmds = append(cmds, cmd)
	if m.filter.Active {
		m.filter, cmd = m.filter.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// applyBundle swaps in a freshly loaded bundle. Panel state resets to the
// defaults (first category active, cursor at the top); the current page
// stays open when its slug survived the reload.
func (m App) applyBundle(b *site.Bundle) (tea.Model, tea.Cmd) {
	m.bundle = b
	m.examples = panels.NewExampleDeck(b.Examples)
	m.benchmarks = panels.NewBenchmarkDeck(b.Benchmarks)
	m.sidebar = panels.NewSidebar(b.Sections)

	current := m.pageView.Page()
	m.pageView = panels.NewPageView()
	if current != nil {
		if p := b.FindPage(current.Slug); p != nil {
			m.pageView.SetPage(*p)
		} else if m.docsFocus == focusPage {
			m.docsFocus = focusSidebar
		}
	}

	var cmd tea.Cmd
	m.toast, cmd = m.toast.Show("Content reloaded", false)
	return m, cmd
}

// handleKey processes key events: overlays first, then global keys, then
// the focused panel of the current screen.
func (m App) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if m.help.Active() {
		return m, m.help.Update(msg)
	}

	if m.filter.Active {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.globalKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.globalKeys.Help):
		m.help.Toggle()
		return m, nil
	case key.Matches(msg, m.globalKeys.Reload):
		return m, m.reloadContent()
	case key.Matches(msg, m.globalKeys.Tab):
		m.cycleFocus(1)
		return m, nil
	case key.Matches(msg, m.globalKeys.ShiftTab):
		m.cycleFocus(-1)
		return m, nil
	case key.Matches(msg, m.globalKeys.Docs):
		m.screen = ScreenDocs
		return m, nil
	case key.Matches(msg, m.globalKeys.Home):
		m.screen = ScreenHome
		return m, nil
	}

	switch m.screen {
	case ScreenHome:
		return m.handleHomeKey(msg)
	case ScreenDocs:
		return m.handleDocsKey(msg)
	}

	return m, nil
}

// cycleFocus moves panel focus within the current screen.
func (m *App) cycleFocus(delta int) {
	switch m.screen {
	case ScreenHome:
		m.homeFocus = (m.homeFocus + delta + panelsPerScreen) % panelsPerScreen
	case ScreenDocs:
		m.docsFocus = (m.docsFocus + delta + panelsPerScreen) % panelsPerScreen
	}
}

// handleHomeKey delegates keys to the focused deck. The two decks are
// independent; keys only ever reach one of them.
func (m App) handleHomeKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.homeFocus {
	case focusExamples:
		var panel panels.Panel
		panel, cmd = m.examples.Update(msg)
		m.examples = panel.(panels.ExampleDeck)
	case focusBenchmarks:
		var panel panels.Panel
		panel, cmd = m.benchmarks.Update(msg)
		m.benchmarks = panel.(panels.BenchmarkDeck)
	}
	return m, cmd
}

// handleDocsKey processes keys on the docs screen.
func (m App) handleDocsKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.docsKeys.Filter) && m.docsFocus == focusSidebar:
		m.filter = components.NewFilter(m.sidebar.Filter())
		return m, nil

	case key.Matches(msg, m.docsKeys.Back):
		switch {
		case m.docsFocus == focusPage:
			m.docsFocus = focusSidebar
		case m.sidebar.Filter() != "":
			m.sidebar = m.sidebar.SetFilter("")
		default:
			m.screen = ScreenHome
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.docsFocus {
	case focusSidebar:
		var panel panels.Panel
		panel, cmd = m.sidebar.Update(msg)
		m.sidebar = panel.(panels.Sidebar)
	case focusPage:
		var panel panels.Panel
		panel, cmd = m.pageView.Update(msg)
		m.pageView = panel.(*panels.PageView)
	}
	return m, cmd
}

// View renders the current screen with a help bar at the bottom.
func (m App) View() tea.View {
	if m.width == 0 || m.height == 0 {
		v := tea.NewView("Loading...")
		v.AltScreen = true
		return v
	}

	// Reserve space for the help bar and the optional toast/filter lines.
	contentHeight := m.height - 1
	if m.toast.Active {
		contentHeight--
	}
	if m.filter.Active {
		contentHeight--
	}

	var mainContent string
	switch m.screen {
	case ScreenHome:
		mainContent = m.renderHome(contentHeight)
	case ScreenDocs:
		mainContent = m.renderDocs(contentHeight)
	}

	if m.help.Active() {
		mainContent = lipgloss.Place(m.width, contentHeight,
			lipgloss.Center, lipgloss.Center, m.help.View(m.width, contentHeight))
	}

	var parts []string
	parts = append(parts, mainContent)
	if m.filter.Active {
		parts = append(parts, m.filter.View(m.width))
	}
	if m.toast.Active {
		parts = append(parts, m.toast.View(m.width))
	}
	parts = append(parts, m.renderHelpBar())

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	v := tea.NewView(content)
	v.AltScreen = true
	return v
}

// renderHome renders the landing screen: masthead plus the two decks.
func (m App) renderHome(height int) string {
	hero := m.renderHero()
	heroHeight := lipgloss.Height(hero)

	deckHeight := (height - heroHeight) / 2
	examplesPanel := m.examples.View(m.width, deckHeight, m.homeFocus == focusExamples)
	benchmarksPanel := m.benchmarks.View(m.width, height-heroHeight-deckHeight, m.homeFocus == focusBenchmarks)

	return lipgloss.JoinVertical(lipgloss.Left, hero, examplesPanel, benchmarksPanel)
}

// renderHero renders the site masthead from the bundle metadata.
func (m App) renderHero() string {
	s := m.bundle.Site
	name := HeroNameStyle.Render(" " + s.Name + " ")
	tagline := HeroTaglineStyle.Render(" " + s.Tagline)

	links := ""
	if s.BaseURL != "" {
		links = " " + lipgloss.NewStyle().Foreground(colorMuted).Render(s.BaseURL)
		if s.RepoURL != "" {
			links += lipgloss.NewStyle().Foreground(colorSubtle).Render("  ·  ") +
				lipgloss.NewStyle().Foreground(colorMuted).Render(s.RepoURL)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, name, tagline, links)
}

// renderDocs renders the docs screen: sidebar on the left, page on the right.
func (m App) renderDocs(height int) string {
	leftWidth := m.width * 3 / 10
	if leftWidth < 24 {
		leftWidth = 24
	}
	rightWidth := m.width - leftWidth

	sidebarPanel := m.sidebar.View(leftWidth, height, m.docsFocus == focusSidebar)
	pagePanel := m.pageView.View(rightWidth, height, m.docsFocus == focusPage)

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebarPanel, pagePanel)
}

// renderHelpBar renders the context-sensitive help bar at the bottom.
func (m App) renderHelpBar() string {
	var helpBindings []panels.HelpBinding

	switch m.screen {
	case ScreenHome:
		if m.homeFocus == focusExamples {
			helpBindings = m.examples.HelpBindings()
		} else {
			helpBindings = m.benchmarks.HelpBindings()
		}
	case ScreenDocs:
		if m.docsFocus == focusSidebar {
			helpBindings = m.sidebar.HelpBindings()
		} else {
			helpBindings = m.pageView.HelpBindings()
		}
	}

	var formatted []string
	for _, b := range helpBindings {
		formatted = append(formatted, helpBinding(b.Key, b.Desc))
	}

	bar := strings.Join(formatted, "  ")

	// Pad to full width.
	barWidth := lipgloss.Width(bar)
	if barWidth < m.width {
		bar += strings.Repeat(" ", m.width-barWidth)
	}

	return HelpBarStyle.Render(bar)
}

// --- Commands (tea.Cmd factories) ---

// reloadContent returns a command that re-reads the content bundle from
// the configured directory, or the embedded default when none is set.
func (m App) reloadContent() tea.Cmd {
	dir := m.config.Content.Dir
	return func() tea.Msg {
		var b *site.Bundle
		var err error
		if dir != "" {
			b, err = site.LoadDir(dir)
		} else {
			b, err = site.LoadDefault()
		}
		if err != nil {
			return errMsg{err}
		}
		return bundleReloadedMsg{bundle: b}
	}
}

// --- Helpers ---

// helpBinding formats a single key-description pair for the help bar.
func helpBinding(k, desc string) string {
	return HelpKeyStyle.Render(k) + " " + HelpBarStyle.Render(desc)
}
