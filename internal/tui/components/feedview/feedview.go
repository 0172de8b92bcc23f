// Package feedview renders the grouped activity feed with filter views and
// reaction toggles.
package feedview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"habitlink/internal/constants"
	"habitlink/internal/feed"
	"habitlink/internal/gesture"
	"habitlink/internal/hostenv"
	"habitlink/internal/i18n"
	"habitlink/internal/models"
)

// RefreshMsg asks the parent to reload the feed.
type RefreshMsg struct{}

// ReactMsg asks the parent to toggle a reaction on an event.
type ReactMsg struct {
	ActivityID string
	Emoji      string
}

type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Filter  key.Binding
	Refresh key.Binding
	React   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Filter:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		React:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6"), key.WithHelp("1-6", "react")),
	}
}

type Model struct {
	agg    *feed.Aggregator
	cursor int
	offset int
	pull   *gesture.Controller
	dragY  int
	keys   KeyMap
	locale i18n.Locale
	width  int
	height int
}

func New(agg *feed.Aggregator, locale i18n.Locale, haptics hostenv.Haptics) Model {
	return Model{
		agg:    agg,
		pull:   gesture.NewController(nil, haptics),
		keys:   DefaultKeyMap(),
		locale: locale,
	}
}

func (m Model) Aggregator() *feed.Aggregator { return m.agg }

func (m Model) PullDistance() float64 { return m.pull.Distance() }

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// ClampCursor keeps the selection valid after a reload or filter switch.
func (m *Model) ClampCursor() {
	n := len(m.agg.Filtered())
	if m.cursor >= n {
		m.cursor = 0
		m.offset = 0
	}
}

func (m Model) selected() (models.ActivityEvent, bool) {
	events := m.agg.Filtered()
	if m.cursor < 0 || m.cursor >= len(events) {
		return models.ActivityEvent{}, false
	}
	return events[m.cursor], true
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.agg.Filtered())-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Filter):
			m.agg.SetFilter(m.agg.Filter().Next())
			m.cursor = 0
			m.offset = 0
		case key.Matches(msg, m.keys.Refresh):
			return m, func() tea.Msg { return RefreshMsg{} }
		case key.Matches(msg, m.keys.React):
			idx := int(msg.String()[0] - '1')
			if ev, ok := m.selected(); ok && idx >= 0 && idx < len(constants.ReactionPalette) {
				emoji := constants.ReactionPalette[idx]
				id := ev.ID
				return m, func() tea.Msg { return ReactMsg{ActivityID: id, Emoji: emoji} }
			}
		}

	case tea.MouseMsg:
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft {
				m.pull.Begin(m.offset)
				m.dragY = msg.Y
			}
		case tea.MouseActionMotion:
			m.pull.Move(float64(msg.Y-m.dragY) * constants.PullUnitsPerRow)
		case tea.MouseActionRelease:
			if m.pull.End() {
				return m, func() tea.Msg { return RefreshMsg{} }
			}
		}
	}
	return m, nil
}

var (
	sectionStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Bold(true)
	actorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	timeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	kindStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	selectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	mineStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	filterOnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("236")).Padding(0, 1).Bold(true)
	filterOffStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 1)
	pullCueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
	pullReadyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
)

func (m Model) View() string {
	var b strings.Builder

	if d := m.pull.Distance(); d > 8 {
		cue := m.locale.T("pullToRefresh")
		style := pullCueStyle
		if m.pull.ReleaseReady() {
			cue = m.locale.T("releaseToRefresh")
			style = pullReadyStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("  ↓ %s", cue)))
		b.WriteString("\n\n")
	}

	b.WriteString("  " + m.filterBar() + "\n\n")

	sections := m.agg.Sections()
	if len(sections) == 0 {
		b.WriteString("  " + m.locale.T("noEvents") + "\n")
		return b.String()
	}

	now := time.Now()
	i := 0
	for _, section := range sections {
		b.WriteString(sectionStyle.Render("  "+section.Label) + "\n")
		for _, ev := range section.Events {
			m.renderEvent(&b, ev, i == m.cursor, now)
			i++
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) filterBar() string {
	parts := make([]string, 0, 3)
	for _, f := range []feed.Filter{feed.FilterAll, feed.FilterMine, feed.FilterFriends} {
		label := map[feed.Filter]string{
			feed.FilterAll:     m.locale.T("filterAll"),
			feed.FilterMine:    m.locale.T("filterMine"),
			feed.FilterFriends: m.locale.T("filterFriends"),
		}[f]
		if f == m.agg.Filter() {
			parts = append(parts, filterOnStyle.Render(label))
		} else {
			parts = append(parts, filterOffStyle.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) renderEvent(b *strings.Builder, ev models.ActivityEvent, selected bool, now time.Time) {
	actor := ev.ActorName
	if ev.OwnEvent {
		actor = m.locale.T("youLabel")
	}
	kind := map[models.ActivityKind]string{
		models.ActivityCompleted: m.locale.T("completed"),
		models.ActivityStreak:    m.locale.T("streak"),
		models.ActivityRecord:    m.locale.T("record"),
	}[ev.Kind]

	prefix := "  "
	if selected {
		prefix = selectedStyle.Render("▸ ")
	}
	b.WriteString(fmt.Sprintf("  %s%s %s %s\n", prefix,
		actorStyle.Render(actor), kindStyle.Render("["+kind+"]"),
		timeStyle.Render(m.agg.RelativeTime(ev, now))))
	b.WriteString("      " + ev.Message + "\n")

	line := ""
	for _, r := range ev.Reactions {
		if r.Count == 0 {
			continue
		}
		item := fmt.Sprintf("%s %d", r.Emoji, r.Count)
		if r.Mine {
			item = mineStyle.Render(item)
		}
		line += "  " + item
	}
	if line != "" {
		b.WriteString("    " + line + "\n")
	}
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Filter, m.keys.React, m.keys.Refresh}
}
