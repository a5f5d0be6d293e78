// Package toast implements a single-slot, auto-expiring notification.
//
// Bubble Tea ticks cannot be cancelled, so every Show and Dismiss bumps a
// sequence number and an expiry only clears the toast it was scheduled for.
package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultDelay is how long a toast stays visible.
const DefaultDelay = 3 * time.Second

// Kind is the toast flavour.
type Kind int

const (
	Success Kind = iota
	Error
)

// Toast is one notification.
type Toast struct {
	Kind Kind
	Text string
}

// ShowMsg asks the owner of the Notifier to display a toast.
type ShowMsg struct {
	Toast Toast
}

// ExpireMsg is delivered when a toast's timer fires.
type ExpireMsg struct {
	Seq int
}

// Show returns a command that emits a ShowMsg.
func Show(kind Kind, text string) tea.Cmd {
	return func() tea.Msg {
		return ShowMsg{Toast: Toast{Kind: kind, Text: text}}
	}
}

// Notifier holds at most one live toast.
type Notifier struct {
	current *Toast
	seq     int
	delay   time.Duration
}

// New creates a Notifier. A non-positive delay uses DefaultDelay.
func New(delay time.Duration) Notifier {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return Notifier{delay: delay}
}

// Show replaces the current toast and schedules its expiry.
func (n *Notifier) Show(t Toast) tea.Cmd {
	n.seq++
	n.current = &t
	seq := n.seq
	return tea.Tick(n.delay, func(time.Time) tea.Msg {
		return ExpireMsg{Seq: seq}
	})
}

// Dismiss clears the toast now and invalidates its pending expiry.
func (n *Notifier) Dismiss() {
	n.seq++
	n.current = nil
}

// Expire handles an ExpireMsg. Stale expiries are ignored.
func (n *Notifier) Expire(msg ExpireMsg) {
	if msg.Seq != n.seq {
		return
	}
	n.current = nil
}

// Current returns the visible toast, if any.
func (n Notifier) Current() (Toast, bool) {
	if n.current == nil {
		return Toast{}, false
	}
	return *n.current, true
}

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1D221E")).
			Background(lipgloss.Color("#a6e3a1")).
			Bold(true).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1D221E")).
			Background(lipgloss.Color("#f38ba8")).
			Bold(true).
			Padding(0, 1)
)

// View renders the toast right-aligned within width, or "" when none.
func (n Notifier) View(width int) string {
	t, ok := n.Current()
	if !ok {
		return ""
	}
	icon, style := "✓ ", successStyle
	if t.Kind == Error {
		icon, style = "✗ ", errorStyle
	}
	box := style.Render(icon + t.Text + "  ctrl+x")
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Right).Render(box)
}
