// Package home renders the viewer's habits with their Monday-aligned week
// strips and owns the pull-to-refresh gesture for that screen.
package home

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"habitlink/internal/constants"
	"habitlink/internal/gesture"
	"habitlink/internal/hostenv"
	"habitlink/internal/i18n"
	"habitlink/internal/models"
	"habitlink/internal/progress"
)

// RefreshMsg asks the parent to reload habits.
type RefreshMsg struct{}

// CompleteMsg asks the parent to record today's completion.
type CompleteMsg struct {
	ID string
}

// AddHabitMsg asks the parent to open the habit form.
type AddHabitMsg struct{}

// EditHabitMsg asks the parent to open the habit form pre-filled.
type EditHabitMsg struct {
	ID string
}

type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Complete key.Binding
	Add      key.Binding
	Edit     key.Binding
	Refresh  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Complete: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "complete today")),
		Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

type Model struct {
	habits  []models.Habit
	weeks   map[string]map[string]struct{}
	cursor  int
	offset  int
	pending map[string]bool
	pull    *gesture.Controller
	dragY   int
	keys    KeyMap
	locale  i18n.Locale
	width   int
	height  int
}

func New(locale i18n.Locale, haptics hostenv.Haptics) Model {
	return Model{
		weeks:   make(map[string]map[string]struct{}),
		pending: make(map[string]bool),
		pull:    gesture.NewController(nil, haptics),
		keys:    DefaultKeyMap(),
		locale:  locale,
	}
}

// SetHabits replaces the rendered state with a fresh load. Archived habits
// are excluded from the active view.
func (m *Model) SetHabits(habits []models.Habit, weeks map[string]map[string]struct{}) {
	active := make([]models.Habit, 0, len(habits))
	for _, h := range habits {
		if !h.Archived {
			active = append(active, h)
		}
	}
	m.habits = active
	if weeks != nil {
		m.weeks = weeks
	}
	if m.cursor >= len(m.habits) {
		m.cursor = 0
		m.offset = 0
	}
}

func (m Model) Selected() (models.Habit, bool) {
	if m.cursor < 0 || m.cursor >= len(m.habits) {
		return models.Habit{}, false
	}
	return m.habits[m.cursor], true
}

// Pending reports whether a completion call for the habit is in flight.
func (m Model) Pending(id string) bool { return m.pending[id] }

// ClearPending releases the double-submit guard once the call settles.
func (m *Model) ClearPending(id string) { delete(m.pending, id) }

// PullDistance exposes the damped pull distance for the release cue.
func (m Model) PullDistance() float64 { return m.pull.Distance() }

func (m Model) ReleaseReady() bool { return m.pull.ReleaseReady() }

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
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
			if m.cursor < len(m.habits)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Complete):
			if h, ok := m.Selected(); ok && !m.pending[h.ID] {
				m.pending[h.ID] = true
				id := h.ID
				return m, func() tea.Msg { return CompleteMsg{ID: id} }
			}
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddHabitMsg{} }
		case key.Matches(msg, m.keys.Edit):
			if h, ok := m.Selected(); ok {
				id := h.ID
				return m, func() tea.Msg { return EditHabitMsg{ID: id} }
			}
		case key.Matches(msg, m.keys.Refresh):
			return m, func() tea.Msg { return RefreshMsg{} }
		}

	case tea.MouseMsg:
		return m.updateGesture(msg)
	}
	return m, nil
}

// updateGesture translates mouse drag events into the pull controller's
// begin/move/end protocol. Tracking starts only when the list sits at the
// top, matching the touch behavior the gesture mirrors.
func (m Model) updateGesture(msg tea.MouseMsg) (Model, tea.Cmd) {
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
	return m, nil
}

var (
	todayStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	doneStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	missedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	selectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	streakStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
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

	if len(m.habits) == 0 {
		b.WriteString("\n  " + m.locale.T("noHabits") + "\n")
		return b.String()
	}

	now := time.Now()
	for i, h := range m.habits {
		title := fmt.Sprintf("%s %s", h.Icon, h.Title)
		if m.pending[h.ID] {
			title += " …"
		}
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("▸ " + title))
		} else {
			b.WriteString("  " + title)
		}
		b.WriteString(streakStyle.Render(fmt.Sprintf("   %d · %s", h.CurrentStreak,
			fmt.Sprintf(m.locale.T("bestShort"), h.BestStreak))))
		b.WriteString("\n")
		b.WriteString("    " + m.weekStrip(now, h.ID) + "\n\n")
	}
	return b.String()
}

// weekStrip renders the 7-entry Monday..Sunday progress row for one habit.
func (m Model) weekStrip(now time.Time, habitID string) string {
	week := progress.Week(now, m.weeks[habitID])
	parts := make([]string, 0, len(week))
	for _, day := range week {
		block := "▱"
		style := missedStyle
		if day.Completed {
			block = "▰"
			style = doneStyle
		}
		if day.Today {
			style = todayStyle
		}
		parts = append(parts, style.Render(block))
	}
	return strings.Join(parts, " ")
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Complete, m.keys.Add, m.keys.Edit, m.keys.Refresh}
}
