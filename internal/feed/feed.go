// Package feed turns the raw activity and notification lists into the
// grouped, filtered, time-annotated view models the UI renders, and applies
// the optimistic mutations (reaction toggles, read-state flips) with
// server reconciliation.
package feed

import (
	"context"
	"time"

	"habitlink/internal/hostenv"
	"habitlink/internal/i18n"
	"habitlink/internal/models"
)

// API is the slice of the remote client the aggregator consumes.
type API interface {
	ActivityFeed(ctx context.Context) ([]models.ActivityEvent, error)
	ToggleActivityReaction(ctx context.Context, activityID, emoji string) ([]models.ReactionSummary, error)
	Notifications(ctx context.Context) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
	MarkAllNotificationsRead(ctx context.Context) error
}

type Filter int

const (
	FilterAll Filter = iota
	FilterMine
	FilterFriends
)

func (f Filter) String() string {
	switch f {
	case FilterAll:
		return "all"
	case FilterMine:
		return "mine"
	case FilterFriends:
		return "friends"
	default:
		return "unknown"
	}
}

// Next cycles through the mutually exclusive filter views.
func (f Filter) Next() Filter {
	switch f {
	case FilterAll:
		return FilterMine
	case FilterMine:
		return FilterFriends
	default:
		return FilterAll
	}
}

// Section is one calendar-day bucket of the feed, in source order.
type Section struct {
	Label  string
	Events []models.ActivityEvent
}

// Aggregator holds the fetched state. It is meant to live on the UI loop;
// the async calls it issues suspend only the logical task awaiting them.
type Aggregator struct {
	api     API
	haptics hostenv.Haptics
	locale  i18n.Locale

	events        []models.ActivityEvent
	notifications []models.Notification
	filter        Filter
}

func NewAggregator(api API, haptics hostenv.Haptics, locale i18n.Locale) *Aggregator {
	if haptics == nil {
		haptics = hostenv.NoopHaptics{}
	}
	return &Aggregator{api: api, haptics: haptics, locale: locale}
}

// Load fetches the feed. A newer load fully replaces the prior state; there
// is no incremental merge.
func (a *Aggregator) Load(ctx context.Context) error {
	events, err := a.api.ActivityFeed(ctx)
	if err != nil {
		return err
	}
	a.events = events
	return nil
}

func (a *Aggregator) SetFilter(f Filter) { a.filter = f }

func (a *Aggregator) Filter() Filter { return a.filter }

// Events returns the full fetched set.
func (a *Aggregator) Events() []models.ActivityEvent { return a.events }

// Filtered recomputes the active view from the already-fetched set. The
// mine/friends views partition the full set.
func (a *Aggregator) Filtered() []models.ActivityEvent {
	if a.filter == FilterAll {
		return a.events
	}
	wantOwn := a.filter == FilterMine
	out := make([]models.ActivityEvent, 0, len(a.events))
	for _, ev := range a.events {
		if ev.OwnEvent == wantOwn {
			out = append(out, ev)
		}
	}
	return out
}

// Sections groups the filtered view into calendar-day buckets keyed by the
// event's day in the viewer's locale. Bucket order and order within a bucket
// follow source order; the source is trusted to deliver newest-first.
func (a *Aggregator) Sections() []Section {
	var sections []Section
	index := make(map[string]int)
	for _, ev := range a.Filtered() {
		label := a.locale.DayLabel(time.UnixMilli(ev.CreatedAtEpochMS))
		i, ok := index[label]
		if !ok {
			i = len(sections)
			index[label] = i
			sections = append(sections, Section{Label: label})
		}
		sections[i].Events = append(sections[i].Events, ev)
	}
	return sections
}

// RelativeTime renders the event age for display.
func (a *Aggregator) RelativeTime(ev models.ActivityEvent, now time.Time) string {
	return a.locale.FormatRelative(time.UnixMilli(ev.CreatedAtEpochMS), now)
}

// ToggleReaction toggles the viewer's emoji on an event. The haptic fires
// immediately; the displayed summary list is only replaced once the server
// confirms, so no speculative counts ever appear. On failure the prior state
// is left untouched and the error surfaces to the caller.
func (a *Aggregator) ToggleReaction(ctx context.Context, activityID, emoji string) error {
	a.haptics.Impact(hostenv.Light)
	summaries, err := a.api.ToggleActivityReaction(ctx, activityID, emoji)
	if err != nil {
		return err
	}
	for i := range a.events {
		if a.events[i].ID == activityID {
			a.events[i].Reactions = summaries
			break
		}
	}
	return nil
}
