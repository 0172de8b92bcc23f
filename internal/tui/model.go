package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"habitlink/internal/api"
	"habitlink/internal/cache"
	"habitlink/internal/constants"
	"habitlink/internal/feed"
	"habitlink/internal/hostenv"
	"habitlink/internal/i18n"
	"habitlink/internal/invite"
	"habitlink/internal/logger"
	"habitlink/internal/models"
	"habitlink/internal/session"
	"habitlink/internal/tui/components/feedview"
	"habitlink/internal/tui/components/friendsview"
	"habitlink/internal/tui/components/home"
	"habitlink/internal/tui/components/notifview"
)

// Deps are the collaborators the TUI consumes.
type Deps struct {
	API      *api.Client
	Cache    *cache.Store
	Invites  session.Marker
	Bridge   *hostenv.Bridge
	Haptics  hostenv.Haptics
	Locale   i18n.Locale
	Resolver *invite.Resolver
}

// HabitFormModel backs the huh form for creating or editing a habit.
type HabitFormModel struct {
	Title  string
	Weekly string
	Color  string
	Icon   string
}

type Model struct {
	deps Deps

	state    constants.SessionState
	tabState constants.SessionState
	keys     KeyMap
	help     help.Model

	agg     *feed.Aggregator
	habits  []models.Habit
	home    home.Model
	feed    feedview.Model
	friends friendsview.Model
	notif   notifview.Model

	form          *huh.Form
	habitForm     *HabitFormModel
	editingHabit  string
	confirmFriend *models.Friend

	errMsg    string
	status    string
	accepting bool
	quitting  bool
	width     int
	height    int
}

func NewModel(deps Deps) Model {
	agg := feed.NewAggregator(deps.API, deps.Haptics, deps.Locale)

	m := Model{
		deps:     deps,
		state:    constants.StateHome,
		tabState: constants.StateHome,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		agg:      agg,
		home:     home.New(deps.Locale, deps.Haptics),
		feed:     feedview.New(agg, deps.Locale, deps.Haptics),
		friends:  friendsview.New(nil, deps.Locale, 0, 0),
		notif:    notifview.New(agg, deps.Locale),
	}

	// Render the last snapshots instantly; the network loads issued by Init
	// replace them wholesale when they land.
	m.seedFromCache()
	if deps.Resolver != nil && deps.Resolver.CandidateCode("") != "" {
		m.accepting = true
	}
	return m
}

func (m *Model) seedFromCache() {
	if m.deps.Cache == nil {
		return
	}
	if habits, ok, err := m.deps.Cache.Habits(); err == nil && ok {
		m.habits = habits
		m.home.SetHabits(habits, nil)
	} else if err != nil {
		logger.Warn("Failed to read habits snapshot", "error", err)
	}
	if events, ok, err := m.deps.Cache.Feed(); err == nil && ok {
		m.agg.SetEvents(events)
	}
	if friends, ok, err := m.deps.Cache.Friends(); err == nil && ok {
		m.friends.SetFriends(friends)
	}
	if items, ok, err := m.deps.Cache.Notifications(); err == nil && ok {
		m.agg.SetNotifications(items)
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadHabitsCmd(),
		m.loadFeedCmd(),
		m.loadFriendsCmd(),
		m.loadNotificationsCmd(),
		m.resolveInviteCmd(),
	)
}

func (m Model) ShortHelp() []key.Binding {
	bindings := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StateHome:
		bindings = append(bindings, m.home.ShortHelp()...)
	case constants.StateFeed:
		bindings = append(bindings, m.feed.ShortHelp()...)
	case constants.StateFriends:
		bindings = append(bindings, m.friends.ShortHelp()...)
	case constants.StateNotifications:
		bindings = append(bindings, m.notif.ShortHelp()...)
	}
	return bindings
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help},
		m.ShortHelp(),
	}
}
