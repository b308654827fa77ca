package components

import "testing"

func TestToastShowAndTimeout(t *testing.T) {
	var toast Toast
	toast, cmd := toast.Show("Content reloaded", false)

	if !toast.Active {
		t.Fatal("toast not active after Show")
	}
	if cmd == nil {
		t.Fatal("Show returned no dismiss command")
	}

	toast, _ = toast.Update(toastTimeoutMsg{id: toast.id})
	if toast.Active {
		t.Error("toast still active after its own timeout")
	}
}

func TestToastIgnoresStaleTimer(t *testing.T) {
	var toast Toast
	toast, _ = toast.Show("first", false)
	stale := toast.id
	toast, _ = toast.Show("second", true)

	toast, _ = toast.Update(toastTimeoutMsg{id: stale})

	if !toast.Active {
		t.Error("superseded toast's timer dismissed the current toast")
	}
	if toast.Message != "second" {
		t.Errorf("Message = %q, want %q", toast.Message, "second")
	}
}

func TestToastViewInactiveIsEmpty(t *testing.T) {
	var toast Toast
	if got := toast.View(40); got != "" {
		t.Errorf("View() = %q for inactive toast, want empty", got)
	}
}
