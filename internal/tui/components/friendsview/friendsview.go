// Package friendsview renders the friends tab: the friend list, invite
// creation, and removal.
package friendsview

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"habitlink/internal/i18n"
	"habitlink/internal/models"
)

// CreateInviteMsg asks the parent to mint a new invite link.
type CreateInviteMsg struct{}

// RemoveFriendMsg asks the parent to confirm and remove a friend.
type RemoveFriendMsg struct {
	Friend models.Friend
}

// RefreshMsg asks the parent to reload the friend list.
type RefreshMsg struct{}

type Item struct {
	Friend models.Friend
}

func (i Item) Title() string { return i.Friend.DisplayName() }

func (i Item) Description() string {
	if i.Friend.Username != "" {
		return "@" + i.Friend.Username
	}
	return ""
}

func (i Item) FilterValue() string { return i.Friend.DisplayName() }

type KeyMap struct {
	Invite  key.Binding
	Remove  key.Binding
	Refresh key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Invite:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "create invite")),
		Remove:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

type Model struct {
	list      list.Model
	keys      KeyMap
	locale    i18n.Locale
	inviteURL string
}

func New(friends []models.Friend, locale i18n.Locale, width, height int) Model {
	l := list.New(toItems(friends), list.NewDefaultDelegate(), width, height)
	l.Title = "Friends"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Invite, keys.Remove, keys.Refresh}
	}

	return Model{list: l, keys: keys, locale: locale}
}

func toItems(friends []models.Friend) []list.Item {
	items := make([]list.Item, len(friends))
	for i, f := range friends {
		items[i] = Item{Friend: f}
	}
	return items
}

func (m *Model) SetFriends(friends []models.Friend) {
	m.list.SetItems(toItems(friends))
}

// SetInviteURL records the freshly minted share link for display.
func (m *Model) SetInviteURL(url string) { m.inviteURL = url }

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(msg, m.keys.Invite):
			return m, func() tea.Msg { return CreateInviteMsg{} }
		case key.Matches(msg, m.keys.Remove):
			if i, ok := m.list.SelectedItem().(Item); ok {
				friend := i.Friend
				return m, func() tea.Msg { return RemoveFriendMsg{Friend: friend} }
			}
		case key.Matches(msg, m.keys.Refresh):
			return m, func() tea.Msg { return RefreshMsg{} }
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	out := ""
	if m.inviteURL != "" {
		out += "  Invite link: " + m.inviteURL + "\n\n"
	}
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return out + "\n  " + m.locale.T("noFriends") + "\n"
	}
	return out + m.list.View()
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Invite, m.keys.Remove, m.keys.Refresh}
}
