package components

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// toastDuration is how long a notification stays up before dismissing.
const toastDuration = 3 * time.Second

// toastTimeoutMsg dismisses the toast whose id it carries. Showing a new
// toast bumps the id, so a timer left over from an earlier toast cannot
// dismiss the one currently showing.
type toastTimeoutMsg struct {
	id int
}

// Toast is a one-line notification bar, used for reload confirmations and
// content load errors. It dismisses itself after toastDuration.
type Toast struct {
	Message string
	IsError bool
	Active  bool

	id int
}

// Show replaces the toast's message and restarts its dismiss timer.
func (t Toast) Show(message string, isError bool) (Toast, tea.Cmd) {
	t.Message = message
	t.IsError = isError
	t.Active = true
	t.id++

	id := t.id
	return t, tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastTimeoutMsg{id: id}
	})
}

// Update dismisses the toast when its own timer fires. Timers belonging
// to superseded toasts are ignored.
func (t Toast) Update(msg tea.Msg) (Toast, tea.Cmd) {
	if timeout, ok := msg.(toastTimeoutMsg); ok && timeout.id == t.id {
		t.Active = false
	}
	return t, nil
}

// View renders the toast across the given width, or nothing when inactive.
func (t Toast) View(width int) string {
	if !t.Active {
		return ""
	}
	style := toastNormal
	if t.IsError {
		style = toastError
	}
	return style.Width(width).Render(t.Message)
}
