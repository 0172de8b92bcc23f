package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"habitlink/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateHome:
		content = docStyle.Render(m.home.View())
	case constants.StateFeed:
		content = docStyle.Render(m.feed.View())
	case constants.StateFriends:
		content = docStyle.Render(m.friends.View())
	case constants.StateNotifications:
		content = docStyle.Render(m.notif.View())
	case constants.StateHabitForm:
		content = m.form.View()
	case constants.StateConfirmRemoveFriend:
		content = m.viewConfirmRemove()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		m.viewBanner(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	notifLabel := "Inbox"
	if unread := m.agg.Unread(); unread > 0 {
		notifLabel = fmt.Sprintf("Inbox %s", badgeStyle.Render(fmt.Sprintf("(%d)", unread)))
	}
	titles := []string{"Habits", "Feed", "Friends", notifLabel}

	tabs := make([]string, 0, len(tabOrder))
	for i, state := range tabOrder {
		title := titles[i]
		if m.tabState == state {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewBanner() string {
	switch {
	case m.accepting:
		return statusStyle.Render(m.deps.Locale.T("acceptingInvite"))
	case m.errMsg != "":
		return errStyle.Render(m.errMsg)
	case m.status != "":
		return statusStyle.Render(m.status)
	}
	return ""
}

func (m Model) viewConfirmRemove() string {
	if m.confirmFriend == nil {
		return ""
	}
	prompt := fmt.Sprintf(m.deps.Locale.T("confirmRemove"), m.confirmFriend.DisplayName())
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		prompt,
	)
}
