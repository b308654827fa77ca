package panels

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/mgale/docsurf/internal/site"
	"github.com/mgale/docsurf/internal/tui/switcher"
	"github.com/mgale/docsurf/internal/tui/theme"
)

// BenchmarkDeck is the home-screen benchmark switcher. It owns its own
// switcher instance, fully independent of the example deck's.
type BenchmarkDeck struct {
	sw         *switcher.Switcher
	benchmarks []site.Benchmark

	prev   key.Binding
	next   key.Binding
	direct key.Binding
}

// NewBenchmarkDeck builds a deck from the site's benchmark panels.
func NewBenchmarkDeck(benchmarks []site.Benchmark) BenchmarkDeck {
	sels := make([]switcher.Selector, len(benchmarks))
	pans := make([]switcher.Panel, len(benchmarks))
	for i, b := range benchmarks {
		sels[i] = switcher.Selector{Key: b.Key, Label: b.Label}
		pans[i] = switcher.Panel{Key: b.Key, Content: b.Label}
	}
	return BenchmarkDeck{
		sw:         switcher.New(sels, pans),
		benchmarks: benchmarks,
		prev:       prevBinding(),
		next:       nextBinding(),
		direct:     directBinding(),
	}
}

// ActiveKey returns the active benchmark key.
func (d BenchmarkDeck) ActiveKey() string {
	return d.sw.ActiveKey()
}

// Select activates the given benchmark key.
func (d BenchmarkDeck) Select(key string) BenchmarkDeck {
	d.sw.Select(key)
	return d
}

// Update handles key events for the deck.
func (d BenchmarkDeck) Update(msg tea.Msg) (Panel, tea.Cmd) {
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

// active returns the benchmark matching the switcher's active key, or nil.
func (d BenchmarkDeck) active() *site.Benchmark {
	key := d.sw.ActiveKey()
	for i := range d.benchmarks {
		if d.benchmarks[i].Key == key {
			return &d.benchmarks[i]
		}
	}
	return nil
}

// View renders the selector bar and the active benchmark's result table.
func (d BenchmarkDeck) View(width, height int, focused bool) string {
	style := theme.InactiveBorderStyle
	titleColor := theme.ColorSubtle
	if focused {
		style = theme.ActiveBorderStyle
		titleColor = theme.ColorPrimary
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(titleColor).
		Render(" Benchmarks ")

	innerWidth := width - 2
	innerHeight := height - 2
	if innerWidth < 0 {
		innerWidth = 0
	}
	if innerHeight < 0 {
		innerHeight = 0
	}

	lines := []string{selectorBar(d.sw, innerWidth), ""}

	if b := d.active(); b != nil {
		lines = append(lines, renderResults(b.Results, innerWidth)...)
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

// renderResults draws one row per framework: name, a bar scaled against
// the best score, and the numbers.
func renderResults(results []site.BenchmarkResult, width int) []string {
	maxRPS := 0
	for _, r := range results {
		if r.RPS > maxRPS {
			maxRPS = r.RPS
		}
	}
	if maxRPS == 0 {
		return nil
	}

	// name column | bar | rps + latency
	const nameWidth = 10
	numWidth := 20
	barWidth := width - nameWidth - numWidth - 2
	if barWidth < 4 {
		barWidth = 4
	}

	var lines []string
	for i, r := range results {
		name := theme.Truncate(r.Framework, nameWidth)
		name += strings.Repeat(" ", nameWidth-lipgloss.Width(name))

		filled := r.RPS * barWidth / maxRPS
		if filled < 0 {
			filled = 0
		}
		bar := theme.BenchBarStyle.Render(strings.Repeat("█", filled)) +
			strings.Repeat("░", barWidth-filled)

		nums := fmt.Sprintf(" %8d req/s  %s", r.RPS, r.Latency)

		rowStyle := theme.BenchRowStyle
		if i == 0 {
			rowStyle = theme.BenchLeaderStyle
		}
		lines = append(lines, theme.Truncate(rowStyle.Render(name)+bar+rowStyle.Render(nums), width))
	}
	return lines
}

// HelpBindings returns the key hints for the deck.
func (d BenchmarkDeck) HelpBindings() []HelpBinding {
	return deckHelpBindings()
}
