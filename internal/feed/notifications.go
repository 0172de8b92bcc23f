package feed

import (
	"context"
	"time"

	"habitlink/internal/models"
)

// LoadNotifications fetches the inbox, fully replacing the prior list.
func (a *Aggregator) LoadNotifications(ctx context.Context) error {
	items, err := a.api.Notifications(ctx)
	if err != nil {
		return err
	}
	a.notifications = items
	return nil
}

func (a *Aggregator) Notifications() []models.Notification { return a.notifications }

// Unread counts notifications still awaiting acknowledgment.
func (a *Aggregator) Unread() int {
	n := 0
	for _, item := range a.notifications {
		if !item.Read {
			n++
		}
	}
	return n
}

// MarkRead flips one notification optimistically, then confirms with the
// server. The flip is reverted if the call fails.
func (a *Aggregator) MarkRead(ctx context.Context, id string) error {
	i := -1
	for j := range a.notifications {
		if a.notifications[j].ID == id {
			i = j
			break
		}
	}
	if i < 0 || a.notifications[i].Read {
		return nil
	}

	a.notifications[i].Read = true
	if err := a.api.MarkNotificationRead(ctx, id); err != nil {
		a.notifications[i].Read = false
		return err
	}
	return nil
}

// MarkAllRead flips every notification optimistically, then confirms. On
// failure each prior flag is restored.
func (a *Aggregator) MarkAllRead(ctx context.Context) error {
	prior := make([]bool, len(a.notifications))
	for i := range a.notifications {
		prior[i] = a.notifications[i].Read
		a.notifications[i].Read = true
	}
	if err := a.api.MarkAllNotificationsRead(ctx); err != nil {
		for i := range a.notifications {
			a.notifications[i].Read = prior[i]
		}
		return err
	}
	return nil
}

// NotificationRelativeTime renders the notification age for display.
func (a *Aggregator) NotificationRelativeTime(n models.Notification, now time.Time) string {
	return a.locale.FormatRelative(time.UnixMilli(n.CreatedAtEpochMS), now)
}
