package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"habitlink/internal/constants"
	"habitlink/internal/models"
	"habitlink/internal/validation"
)

func newHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&fm.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Times per week").
				Description("0 means every day").
				Value(&fm.Weekly).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					i, err := strconv.Atoi(s)
					if err != nil {
						return err
					}
					if i < 0 || i > 7 {
						return fmt.Errorf("times per week must be 0-7")
					}
					return nil
				}),
			huh.NewInput().
				Title("Color").
				Description("Hex value, e.g. #4CAF50").
				Value(&fm.Color),
			huh.NewInput().
				Title("Icon").
				Description("A single emoji").
				Value(&fm.Icon),
		),
	).WithTheme(huh.ThemeDracula())
}

func (m *Model) openHabitForm(id string) {
	fm := &HabitFormModel{}
	if id != "" {
		for _, h := range m.habits {
			if h.ID != id {
				continue
			}
			fm.Title = h.Title
			fm.Color = h.Color
			fm.Icon = h.Icon
			if h.Cadence == models.CadenceWeekly && h.TimesPerWeek != nil {
				fm.Weekly = strconv.Itoa(*h.TimesPerWeek)
			}
			break
		}
	}
	m.habitForm = fm
	m.editingHabit = id
	m.form = newHabitForm(fm)
	m.state = constants.StateHabitForm
}

func (fm *HabitFormModel) request() models.HabitRequest {
	req := models.HabitRequest{
		Title:   strings.TrimSpace(fm.Title),
		Cadence: models.CadenceDaily,
		Color:   strings.TrimSpace(fm.Color),
		Icon:    strings.TrimSpace(fm.Icon),
	}
	if n, err := strconv.Atoi(strings.TrimSpace(fm.Weekly)); err == nil && n > 0 {
		req.Cadence = models.CadenceWeekly
		req.TimesPerWeek = &n
	}
	return req
}

func (m Model) updateHabitForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = m.tabState
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		req := m.habitForm.request()
		if err := validation.ValidateHabitRequest(req); err != nil {
			m.errMsg = err.Error()
			m.state = m.tabState
			m.form = nil
			return m, nil
		}
		id := m.editingHabit
		m.state = m.tabState
		m.form = nil
		return m, m.saveHabitCmd(id, req)
	case huh.StateAborted:
		m.state = m.tabState
		m.form = nil
	}
	return m, cmd
}
