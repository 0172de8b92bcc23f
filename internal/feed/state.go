package feed

import "habitlink/internal/models"

// The setters below let an Elm-style UI apply fetched data and optimistic
// flips on its update thread while the network calls run as detached tasks.

// SetEvents replaces the fetched feed wholesale.
func (a *Aggregator) SetEvents(events []models.ActivityEvent) {
	a.events = events
}

// ApplyReactions replaces one event's reaction summaries with the server's
// authoritative list.
func (a *Aggregator) ApplyReactions(activityID string, summaries []models.ReactionSummary) {
	for i := range a.events {
		if a.events[i].ID == activityID {
			a.events[i].Reactions = summaries
			return
		}
	}
}

// SetNotifications replaces the inbox wholesale.
func (a *Aggregator) SetNotifications(items []models.Notification) {
	a.notifications = items
}

// SetNotificationRead flips one read flag, returning the prior value so a
// failed call can revert it. The second return is false when the id is
// unknown.
func (a *Aggregator) SetNotificationRead(id string, read bool) (bool, bool) {
	for i := range a.notifications {
		if a.notifications[i].ID == id {
			prior := a.notifications[i].Read
			a.notifications[i].Read = read
			return prior, true
		}
	}
	return false, false
}

// SetAllNotificationsRead flips every read flag, returning the prior flags
// for revert-on-failure.
func (a *Aggregator) SetAllNotificationsRead() []bool {
	prior := make([]bool, len(a.notifications))
	for i := range a.notifications {
		prior[i] = a.notifications[i].Read
		a.notifications[i].Read = true
	}
	return prior
}

// RestoreNotificationFlags reverts read flags captured before an optimistic
// bulk flip.
func (a *Aggregator) RestoreNotificationFlags(prior []bool) {
	for i := range a.notifications {
		if i < len(prior) {
			a.notifications[i].Read = prior[i]
		}
	}
}
