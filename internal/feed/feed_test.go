package feed

import (
	"context"
	"errors"
	"testing"
	"time"

	"habitlink/internal/i18n"
	"habitlink/internal/models"
)

type fakeAPI struct {
	events    []models.ActivityEvent
	summaries []models.ReactionSummary
	items     []models.Notification

	feedErr    error
	reactErr   error
	markErr    error
	markAllErr error

	reactCalls   int
	markCalls    []string
	markAllCalls int
}

func (f *fakeAPI) ActivityFeed(ctx context.Context) ([]models.ActivityEvent, error) {
	return f.events, f.feedErr
}

func (f *fakeAPI) ToggleActivityReaction(ctx context.Context, activityID, emoji string) ([]models.ReactionSummary, error) {
	f.reactCalls++
	if f.reactErr != nil {
		return nil, f.reactErr
	}
	return f.summaries, nil
}

func (f *fakeAPI) Notifications(ctx context.Context) ([]models.Notification, error) {
	return f.items, nil
}

func (f *fakeAPI) MarkNotificationRead(ctx context.Context, id string) error {
	f.markCalls = append(f.markCalls, id)
	return f.markErr
}

func (f *fakeAPI) MarkAllNotificationsRead(ctx context.Context) error {
	f.markAllCalls++
	return f.markAllErr
}

func eventAt(id string, own bool, at time.Time) models.ActivityEvent {
	return models.ActivityEvent{
		ID:               id,
		OwnEvent:         own,
		Kind:             models.ActivityCompleted,
		CreatedAt:        at.Format(time.RFC3339),
		CreatedAtEpochMS: at.UnixMilli(),
	}
}

func TestFilter_Cycle(t *testing.T) {
	f := FilterAll
	want := []Filter{FilterMine, FilterFriends, FilterAll}
	for _, w := range want {
		f = f.Next()
		if f != w {
			t.Fatalf("Next = %v, want %v", f, w)
		}
	}
}

func TestFiltered_PartitionsOnOwnership(t *testing.T) {
	now := time.Now()
	api := &fakeAPI{}
	a := NewAggregator(api, nil, i18n.Match("en"))
	a.SetEvents([]models.ActivityEvent{
		eventAt("mine-1", true, now),
		eventAt("theirs-1", false, now),
		eventAt("mine-2", true, now),
	})

	a.SetFilter(FilterMine)
	mine := a.Filtered()
	a.SetFilter(FilterFriends)
	theirs := a.Filtered()

	if len(mine) != 2 || mine[0].ID != "mine-1" || mine[1].ID != "mine-2" {
		t.Errorf("mine view wrong: %+v", mine)
	}
	if len(theirs) != 1 || theirs[0].ID != "theirs-1" {
		t.Errorf("friends view wrong: %+v", theirs)
	}
	if len(mine)+len(theirs) != len(a.Events()) {
		t.Error("mine and friends views do not partition the full set")
	}
}

func TestSections_GroupsByDayPreservingOrder(t *testing.T) {
	today := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)
	a := NewAggregator(&fakeAPI{}, nil, i18n.Match("en"))
	a.SetEvents([]models.ActivityEvent{
		eventAt("e1", false, today.Add(-1*time.Hour)),
		eventAt("e2", true, today.Add(-2*time.Hour)),
		eventAt("e3", false, today.Add(-26*time.Hour)),
	})

	sections := a.Sections()
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if len(sections[0].Events) != 2 || sections[0].Events[0].ID != "e1" || sections[0].Events[1].ID != "e2" {
		t.Errorf("first section wrong: %+v", sections[0].Events)
	}
	if len(sections[1].Events) != 1 || sections[1].Events[0].ID != "e3" {
		t.Errorf("second section wrong: %+v", sections[1].Events)
	}
}

func TestToggleReaction_ReplacesSummariesOnSuccess(t *testing.T) {
	now := time.Now()
	api := &fakeAPI{
		summaries: []models.ReactionSummary{{Emoji: "🔥", Count: 3, Mine: true}},
	}
	a := NewAggregator(api, nil, i18n.Match("en"))
	ev := eventAt("e1", false, now)
	ev.Reactions = []models.ReactionSummary{{Emoji: "🔥", Count: 2, Mine: false}}
	a.SetEvents([]models.ActivityEvent{ev})

	if err := a.ToggleReaction(context.Background(), "e1", "🔥"); err != nil {
		t.Fatalf("ToggleReaction failed: %v", err)
	}

	got := a.Events()[0].Reactions
	if len(got) != 1 || got[0].Count != 3 || !got[0].Mine {
		t.Errorf("summaries not replaced with server list: %+v", got)
	}
}

func TestToggleReaction_FailureLeavesStateUntouched(t *testing.T) {
	now := time.Now()
	api := &fakeAPI{reactErr: errors.New("boom")}
	a := NewAggregator(api, nil, i18n.Match("en"))
	ev := eventAt("e1", false, now)
	ev.Reactions = []models.ReactionSummary{{Emoji: "💪", Count: 1}}
	a.SetEvents([]models.ActivityEvent{ev})

	if err := a.ToggleReaction(context.Background(), "e1", "💪"); err == nil {
		t.Fatal("expected error")
	}

	got := a.Events()[0].Reactions
	if len(got) != 1 || got[0].Count != 1 || got[0].Mine {
		t.Errorf("state changed on failure: %+v", got)
	}
}

func TestMarkRead_OptimisticWithRevert(t *testing.T) {
	api := &fakeAPI{markErr: errors.New("offline")}
	a := NewAggregator(api, nil, i18n.Match("en"))
	a.SetNotifications([]models.Notification{
		{ID: "n1", Read: false},
		{ID: "n2", Read: false},
	})

	if err := a.MarkRead(context.Background(), "n1"); err == nil {
		t.Fatal("expected error")
	}
	if a.Notifications()[0].Read {
		t.Error("flip not reverted after failure")
	}
	if a.Unread() != 2 {
		t.Errorf("unread = %d, want 2", a.Unread())
	}

	api.markErr = nil
	if err := a.MarkRead(context.Background(), "n1"); err != nil {
		t.Fatalf("MarkRead failed: %v", err)
	}
	if !a.Notifications()[0].Read {
		t.Error("notification not marked read")
	}
	if a.Unread() != 1 {
		t.Errorf("unread = %d, want 1", a.Unread())
	}
}

func TestMarkRead_AlreadyReadSkipsNetwork(t *testing.T) {
	api := &fakeAPI{}
	a := NewAggregator(api, nil, i18n.Match("en"))
	a.SetNotifications([]models.Notification{{ID: "n1", Read: true}})

	if err := a.MarkRead(context.Background(), "n1"); err != nil {
		t.Fatalf("MarkRead failed: %v", err)
	}
	if len(api.markCalls) != 0 {
		t.Errorf("network called for an already-read notification: %v", api.markCalls)
	}
}

func TestMarkAllRead_RestoresMixedFlagsOnFailure(t *testing.T) {
	api := &fakeAPI{markAllErr: errors.New("offline")}
	a := NewAggregator(api, nil, i18n.Match("en"))
	a.SetNotifications([]models.Notification{
		{ID: "n1", Read: true},
		{ID: "n2", Read: false},
		{ID: "n3", Read: false},
	})

	if err := a.MarkAllRead(context.Background()); err == nil {
		t.Fatal("expected error")
	}

	want := []bool{true, false, false}
	for i, n := range a.Notifications() {
		if n.Read != want[i] {
			t.Errorf("notification %d: read = %v, want %v", i, n.Read, want[i])
		}
	}
}

func TestSetNotificationRead_ReturnsPriorFlag(t *testing.T) {
	a := NewAggregator(&fakeAPI{}, nil, i18n.Match("en"))
	a.SetNotifications([]models.Notification{{ID: "n1", Read: false}})

	prior, found := a.SetNotificationRead("n1", true)
	if !found || prior {
		t.Errorf("prior = %v, found = %v", prior, found)
	}
	if !a.Notifications()[0].Read {
		t.Error("flag not flipped")
	}

	if _, found := a.SetNotificationRead("missing", true); found {
		t.Error("unknown id reported as found")
	}
}
