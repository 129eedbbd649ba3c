// Package components holds the dashboard's bubbletea widgets.
package components

import (
	"time"

	"github.com/Veraticus/hpqaq/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
)

// ToastDuration is how long a toast stays visible.
const ToastDuration = 3 * time.Second

// ToastExpiredMsg hides the toast it names.
type ToastExpiredMsg struct {
	ID int
}

// Toast is a transient one-line message.
type Toast struct {
	theme   themes.Theme
	text    string
	id      int
	isError bool
	visible bool
}

// NewToast creates a hidden toast.
func NewToast(theme themes.Theme) Toast {
	return Toast{theme: theme}
}

// Show replaces the current message. The returned command expires it.
func (t Toast) Show(text string, isError bool) (Toast, tea.Cmd) {
	t.id++
	t.text = text
	t.isError = isError
	t.visible = true
	id := t.id
	return t, tea.Tick(ToastDuration, func(time.Time) tea.Msg {
		return ToastExpiredMsg{ID: id}
	})
}

// Update hides the toast when its expiry arrives. Expiries of replaced
// messages are ignored.
func (t Toast) Update(msg tea.Msg) Toast {
	if m, ok := msg.(ToastExpiredMsg); ok && m.ID == t.id {
		t.visible = false
	}
	return t
}

// Visible reports whether a message is showing.
func (t Toast) Visible() bool {
	return t.visible
}

// Text returns the current message.
func (t Toast) Text() string {
	if !t.visible {
		return ""
	}
	return t.text
}

// View renders the toast, or nothing when hidden.
func (t Toast) View() string {
	if !t.visible {
		return ""
	}
	if t.isError {
		return t.theme.ToastError.Render(t.text)
	}
	return t.theme.Toast.Render(t.text)
}
