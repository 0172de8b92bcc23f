package tui

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"habitlink/internal/constants"
	"habitlink/internal/hostenv"
	"habitlink/internal/invite"
	"habitlink/internal/logger"
	"habitlink/internal/models"
	"habitlink/internal/progress"
	"habitlink/internal/tui/components/feedview"
	"habitlink/internal/tui/components/friendsview"
	"habitlink/internal/tui/components/home"
	"habitlink/internal/tui/components/notifview"
)

const loadTimeout = time.Minute

type habitsLoadedMsg struct {
	habits []models.Habit
	weeks  map[string]map[string]struct{}
	err    error
}

type feedLoadedMsg struct {
	events []models.ActivityEvent
	err    error
}

type friendsLoadedMsg struct {
	friends []models.Friend
	err     error
}

type notifsLoadedMsg struct {
	items []models.Notification
	err   error
}

type inviteResolvedMsg struct {
	result invite.Result
}

type completeDoneMsg struct {
	id  string
	err error
}

type reactionAppliedMsg struct {
	activityID string
	summaries  []models.ReactionSummary
	err        error
}

type markReadDoneMsg struct {
	id    string
	prior bool
	err   error
}

type markAllReadDoneMsg struct {
	prior []bool
	err   error
}

type inviteCreatedMsg struct {
	invite models.Invite
	err    error
}

type friendRemovedMsg struct {
	friend models.Friend
	err    error
}

type habitSavedMsg struct {
	habit models.Habit
	err   error
}

func loadCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), loadTimeout)
}

func (m Model) loadHabitsCmd() tea.Cmd {
	c := m.deps.API
	store := m.deps.Cache
	return func() tea.Msg {
		ctx, cancel := loadCtx()
		defer cancel()

		habits, err := c.Habits(ctx)
		if err != nil {
			return habitsLoadedMsg{err: err}
		}

		// Fetch every active habit's history in parallel. Any failure fails
		// the whole load so the week strips never mix fresh and stale data.
		now := time.Now()
		weeks := make(map[string]map[string]struct{}, len(habits))
		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			firstErr error
		)
		for _, h := range habits {
			if h.Archived {
				continue
			}
			wg.Add(1)
			go func(id string) {
				defer wg.Done()
				history, err := c.HabitHistory(ctx, id)
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					if firstErr == nil {
						firstErr = err
					}
					return
				}
				weeks[id] = progress.DateSet(now, history)
			}(h.ID)
		}
		wg.Wait()
		if firstErr != nil {
			return habitsLoadedMsg{err: firstErr}
		}

		if store != nil {
			if err := store.SaveHabits(habits); err != nil {
				logger.Warn("Failed to snapshot habits", "error", err)
			}
		}
		return habitsLoadedMsg{habits: habits, weeks: weeks}
	}
}

func (m Model) loadFeedCmd() tea.Cmd {
	c := m.deps.API
	store := m.deps.Cache
	return func() tea.Msg {
		ctx, cancel := loadCtx()
		defer cancel()
		events, err := c.ActivityFeed(ctx)
		if err != nil {
			return feedLoadedMsg{err: err}
		}
		if store != nil {
			if err := store.SaveFeed(events); err != nil {
				logger.Warn("Failed to snapshot feed", "error", err)
			}
		}
		return feedLoadedMsg{events: events}
	}
}

func (m Model) loadFriendsCmd() tea.Cmd {
	c := m.deps.API
	store := m.deps.Cache
	return func() tea.Msg {
		ctx, cancel := loadCtx()
		defer cancel()
		friends, err := c.Friends(ctx)
		if err != nil {
			return friendsLoadedMsg{err: err}
		}
		if store != nil {
			if err := store.SaveFriends(friends); err != nil {
				logger.Warn("Failed to snapshot friends", "error", err)
			}
		}
		return friendsLoadedMsg{friends: friends}
	}
}

func (m Model) loadNotificationsCmd() tea.Cmd {
	c := m.deps.API
	store := m.deps.Cache
	return func() tea.Msg {
		ctx, cancel := loadCtx()
		defer cancel()
		items, err := c.Notifications(ctx)
		if err != nil {
			return notifsLoadedMsg{err: err}
		}
		if store != nil {
			if err := store.SaveNotifications(items); err != nil {
				logger.Warn("Failed to snapshot notifications", "error", err)
			}
		}
		return notifsLoadedMsg{items: items}
	}
}

func (m Model) resolveInviteCmd() tea.Cmd {
	r := m.deps.Resolver
	return func() tea.Msg {
		ctx, cancel := loadCtx()
		defer cancel()
		return inviteResolvedMsg{result: r.Resolve(ctx, "")}
	}
}

func (m Model) completeHabitCmd(id string) tea.Cmd {
	c := m.deps.API
	return func() tea.Msg {
		ctx, cancel := loadCtx()
		defer cancel()
		return completeDoneMsg{id: id, err: c.CompleteHabit(ctx, id)}
	}
}

func (m Model) toggleReactionCmd(activityID, emoji string) tea.Cmd {
	c := m.deps.API
	return func() tea.Msg {
		ctx, cancel := loadCtx()
		defer cancel()
		summaries, err := c.ToggleActivityReaction(ctx, activityID, emoji)
		return reactionAppliedMsg{activityID: activityID, summaries: summaries, err: err}
	}
}

func (m Model) markReadCmd(id string, prior bool) tea.Cmd {
	c := m.deps.API
	return func() tea.Msg {
		ctx, cancel := loadCtx()
		defer cancel()
		return markReadDoneMsg{id: id, prior: prior, err: c.MarkNotificationRead(ctx, id)}
	}
}

func (m Model) markAllReadCmd(prior []bool) tea.Cmd {
	c := m.deps.API
	return func() tea.Msg {
		ctx, cancel := loadCtx()
		defer cancel()
		return markAllReadDoneMsg{prior: prior, err: c.MarkAllNotificationsRead(ctx)}
	}
}

func (m Model) createInviteCmd() tea.Cmd {
	c := m.deps.API
	return func() tea.Msg {
		ctx, cancel := loadCtx()
		defer cancel()
		inv, err := c.CreateInvite(ctx)
		return inviteCreatedMsg{invite: inv, err: err}
	}
}

func (m Model) removeFriendCmd(friend models.Friend) tea.Cmd {
	c := m.deps.API
	return func() tea.Msg {
		ctx, cancel := loadCtx()
		defer cancel()
		return friendRemovedMsg{friend: friend, err: c.RemoveFriend(ctx, friend.ID)}
	}
}

func (m Model) saveHabitCmd(id string, req models.HabitRequest) tea.Cmd {
	c := m.deps.API
	return func() tea.Msg {
		ctx, cancel := loadCtx()
		defer cancel()
		var (
			habit models.Habit
			err   error
		)
		if id == "" {
			habit, err = c.CreateHabit(ctx, req)
		} else {
			habit, err = c.UpdateHabit(ctx, id, req)
		}
		return habitSavedMsg{habit: habit, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		body := msg.Height - 6
		if body < 1 {
			body = 1
		}
		m.home.SetSize(msg.Width, body)
		m.feed.SetSize(msg.Width, body)
		m.friends.SetSize(msg.Width, body)
		m.notif.ClampCursor()
		return m, nil

	case tea.KeyMsg:
		if m.state == constants.StateHabitForm || m.state == constants.StateConfirmRemoveFriend {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.setTab(m.nextTab(1))
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.setTab(m.nextTab(-1))
			return m, nil
		}

	case habitsLoadedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.habits = msg.habits
		m.home.SetHabits(msg.habits, msg.weeks)
		return m, nil

	case feedLoadedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.agg.SetEvents(msg.events)
		m.feed.ClampCursor()
		return m, nil

	case friendsLoadedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.friends.SetFriends(msg.friends)
		return m, nil

	case notifsLoadedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.agg.SetNotifications(msg.items)
		m.notif.ClampCursor()
		return m, nil

	case inviteResolvedMsg:
		m.accepting = false
		switch msg.result.Outcome {
		case invite.OutcomeAccepted:
			m.status = fmt.Sprintf("%s %s", m.deps.Locale.T("friendAdded"), msg.result.Friend.DisplayName())
			return m, m.loadFriendsCmd()
		case invite.OutcomeFailed:
			if msg.result.Err != nil {
				m.errMsg = msg.result.Err.Error()
			}
		}
		return m, nil

	case completeDoneMsg:
		m.home.ClearPending(msg.id)
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		// Streaks and week strips are server-derived; reload rather than
		// guessing locally.
		return m, tea.Batch(m.loadHabitsCmd(), m.loadFeedCmd())

	case reactionAppliedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.agg.ApplyReactions(msg.activityID, msg.summaries)
		return m, nil

	case markReadDoneMsg:
		if msg.err != nil {
			m.agg.SetNotificationRead(msg.id, msg.prior)
			m.errMsg = msg.err.Error()
		}
		return m, nil

	case markAllReadDoneMsg:
		if msg.err != nil {
			m.agg.RestoreNotificationFlags(msg.prior)
			m.errMsg = msg.err.Error()
		}
		return m, nil

	case inviteCreatedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.friends.SetInviteURL(msg.invite.InviteURL)
		return m, nil

	case friendRemovedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("%s %s", m.deps.Locale.T("friendRemoved"), msg.friend.DisplayName())
		return m, m.loadFriendsCmd()

	case habitSavedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = m.deps.Locale.T("habitSaved")
		return m, m.loadHabitsCmd()

	case home.RefreshMsg:
		return m, m.loadHabitsCmd()

	case home.CompleteMsg:
		m.deps.Haptics.Impact(hostenv.Medium)
		return m, m.completeHabitCmd(msg.ID)

	case home.AddHabitMsg:
		m.openHabitForm("")
		return m, m.form.Init()

	case home.EditHabitMsg:
		m.openHabitForm(msg.ID)
		return m, m.form.Init()

	case feedview.RefreshMsg:
		return m, m.loadFeedCmd()

	case feedview.ReactMsg:
		// Haptic feedback fires on the tap, not on the round trip. The
		// counts only change once the server confirms.
		m.deps.Haptics.Impact(hostenv.Light)
		return m, m.toggleReactionCmd(msg.ActivityID, msg.Emoji)

	case friendsview.RefreshMsg:
		return m, m.loadFriendsCmd()

	case friendsview.CreateInviteMsg:
		return m, m.createInviteCmd()

	case friendsview.RemoveFriendMsg:
		friend := msg.Friend
		m.confirmFriend = &friend
		m.state = constants.StateConfirmRemoveFriend
		return m, nil

	case notifview.RefreshMsg:
		return m, m.loadNotificationsCmd()

	case notifview.MarkReadMsg:
		prior, found := m.agg.SetNotificationRead(msg.ID, true)
		if !found || prior {
			return m, nil
		}
		return m, m.markReadCmd(msg.ID, prior)

	case notifview.MarkAllReadMsg:
		prior := m.agg.SetAllNotificationsRead()
		if len(prior) == 0 {
			return m, nil
		}
		return m, m.markAllReadCmd(prior)
	}

	switch m.state {
	case constants.StateHabitForm:
		return m.updateHabitForm(msg)
	case constants.StateConfirmRemoveFriend:
		return m.updateConfirmRemove(msg)
	case constants.StateHome:
		var cmd tea.Cmd
		m.home, cmd = m.home.Update(msg)
		return m, cmd
	case constants.StateFeed:
		var cmd tea.Cmd
		m.feed, cmd = m.feed.Update(msg)
		return m, cmd
	case constants.StateFriends:
		var cmd tea.Cmd
		m.friends, cmd = m.friends.Update(msg)
		return m, cmd
	case constants.StateNotifications:
		var cmd tea.Cmd
		m.notif, cmd = m.notif.Update(msg)
		return m, cmd
	}
	return m, nil
}

var tabOrder = []constants.SessionState{
	constants.StateHome,
	constants.StateFeed,
	constants.StateFriends,
	constants.StateNotifications,
}

func (m *Model) nextTab(step int) constants.SessionState {
	idx := 0
	for i, s := range tabOrder {
		if s == m.tabState {
			idx = i
			break
		}
	}
	idx = (idx + step + len(tabOrder)) % len(tabOrder)
	return tabOrder[idx]
}

func (m *Model) setTab(state constants.SessionState) {
	m.tabState = state
	m.state = state
	m.status = ""
}

func (m Model) updateConfirmRemove(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "y", "Y":
		friend := *m.confirmFriend
		m.confirmFriend = nil
		m.state = constants.StateFriends
		return m, m.removeFriendCmd(friend)
	case "n", "N", "esc":
		m.confirmFriend = nil
		m.state = constants.StateFriends
	}
	return m, nil
}
