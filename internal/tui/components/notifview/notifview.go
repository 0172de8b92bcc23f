// Package notifview renders the notification inbox with individual and bulk
// read acknowledgment.
package notifview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"habitlink/internal/feed"
	"habitlink/internal/i18n"
	"habitlink/internal/models"
)

// MarkReadMsg asks the parent to acknowledge one notification.
type MarkReadMsg struct {
	ID string
}

// MarkAllReadMsg asks the parent to acknowledge everything.
type MarkAllReadMsg struct{}

// RefreshMsg asks the parent to reload the inbox.
type RefreshMsg struct{}

type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Read    key.Binding
	ReadAll key.Binding
	Refresh key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Read:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mark read")),
		ReadAll: key.NewBinding(key.WithKeys("M"), key.WithHelp("M", "mark all read")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

type Model struct {
	agg    *feed.Aggregator
	cursor int
	keys   KeyMap
	locale i18n.Locale
}

func New(agg *feed.Aggregator, locale i18n.Locale) Model {
	return Model{agg: agg, keys: DefaultKeyMap(), locale: locale}
}

func (m *Model) ClampCursor() {
	if m.cursor >= len(m.agg.Notifications()) {
		m.cursor = 0
	}
}

func (m Model) selected() (models.Notification, bool) {
	items := m.agg.Notifications()
	if m.cursor < 0 || m.cursor >= len(items) {
		return models.Notification{}, false
	}
	return items[m.cursor], true
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.agg.Notifications())-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Read):
			if n, ok := m.selected(); ok && !n.Read {
				id := n.ID
				return m, func() tea.Msg { return MarkReadMsg{ID: id} }
			}
		case key.Matches(msg, m.keys.ReadAll):
			if m.agg.Unread() > 0 {
				return m, func() tea.Msg { return MarkAllReadMsg{} }
			}
		case key.Matches(msg, m.keys.Refresh):
			return m, func() tea.Msg { return RefreshMsg{} }
		}
	}
	return m, nil
}

var (
	unreadStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	readStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	timeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func (m Model) View() string {
	items := m.agg.Notifications()
	if len(items) == 0 {
		return "\n  " + m.locale.T("noNotifications") + "\n"
	}

	var b strings.Builder
	now := time.Now()
	for i, n := range items {
		marker := "  "
		if !n.Read {
			marker = unreadStyle.Render("• ")
		}
		line := fmt.Sprintf("%s%s · %s", marker, n.ActorName, n.Message)
		if n.Read {
			line = readStyle.Render(line)
		}
		prefix := "  "
		if i == m.cursor {
			prefix = selectedStyle.Render("▸ ")
		}
		b.WriteString(prefix + line + "  " +
			timeStyle.Render(m.agg.NotificationRelativeTime(n, now)) + "\n")
	}
	return b.String()
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Read, m.keys.ReadAll, m.keys.Refresh}
}
