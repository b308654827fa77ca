package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	lipgloss "charm.land/lipgloss/v2"
)

// FilterChanged is sent as the user types; the value is the live filter text.
type FilterChanged struct {
	Value string
}

// FilterAccepted is sent when the user confirms the filter with Enter.
type FilterAccepted struct {
	Value string
}

// FilterCancelled is sent when the user aborts the filter with Esc.
type FilterCancelled struct{}

// Filter is an inline filter prompt backed by the bubbles textinput
// widget. Typing updates the filter live; Enter keeps it, Esc clears it.
type Filter struct {
	Active bool
	input  textinput.Model
}

// NewFilter creates an active filter prompt seeded with the given value.
func NewFilter(value string) Filter {
	ti := textinput.New()
	ti.Placeholder = "type to filter pages"
	ti.Prompt = "/ "
	ti.SetValue(value)
	ti.Focus()

	return Filter{
		Active: true,
		input:  ti,
	}
}

// Value returns the current filter text.
func (f Filter) Value() string {
	return f.input.Value()
}

// Update handles key events for the filter prompt.
// Enter accepts, Esc cancels, everything else feeds the textinput and
// reports the new value.
func (f Filter) Update(msg tea.Msg) (Filter, tea.Cmd) {
	if !f.Active {
		return f, nil
	}

	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
			f.Active = false
			value := f.input.Value()
			return f, func() tea.Msg {
				return FilterAccepted{Value: value}
			}
		case key.Matches(msg, key.NewBinding(key.WithKeys("esc"))):
			f.Active = false
			return f, func() tea.Msg {
				return FilterCancelled{}
			}
		}
	}

	// Delegate to the textinput for regular character input, then report
	// the live value so the sidebar narrows as the user types.
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	value := f.input.Value()
	report := func() tea.Msg {
		return FilterChanged{Value: value}
	}
	return f, tea.Batch(cmd, report)
}

// View renders the filter bar spanning the given width.
// Returns an empty string if the filter is not active.
func (f Filter) View(width int) string {
	if !f.Active {
		return ""
	}

	bar := filterPrompt.Render("filter ") + f.input.View() +
		"  " + filterHint.Render("enter keep  esc clear")
	return lipgloss.NewStyle().Width(width).Render(bar)
}
