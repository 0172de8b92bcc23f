package progress

import (
	"testing"
	"time"

	"habitlink/internal/models"
)

// Jan 3 2024 is a Wednesday; its week runs Mon Jan 1 .. Sun Jan 7.
var wednesday = time.Date(2024, 1, 3, 15, 30, 0, 0, time.UTC)

func TestWeekOf_MondayAligned(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
	}{
		{"midweek", wednesday},
		{"monday itself", time.Date(2024, 1, 1, 0, 0, 1, 0, time.UTC)},
		{"sunday end of week", time.Date(2024, 1, 7, 23, 59, 59, 0, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			days := WeekOf(tc.now)
			if got := days[0].Format("2006-01-02"); got != "2024-01-01" {
				t.Errorf("week should start on Mon 2024-01-01, got %s", got)
			}
			if got := days[6].Format("2006-01-02"); got != "2024-01-07" {
				t.Errorf("week should end on Sun 2024-01-07, got %s", got)
			}
			for i, d := range days {
				if d.Hour() != 0 || d.Minute() != 0 {
					t.Errorf("day %d is not midnight: %v", i, d)
				}
			}
		})
	}
}

func TestWeek_MarksCompletedAndToday(t *testing.T) {
	done := map[string]struct{}{
		"2024-01-01": {}, // Monday
		"2024-01-03": {}, // Wednesday (today)
	}

	days := Week(wednesday, done)

	wantCompleted := [7]bool{true, false, true, false, false, false, false}
	for i, d := range days {
		if d.Completed != wantCompleted[i] {
			t.Errorf("day %d (%s): completed = %v, want %v", i, d.Key, d.Completed, wantCompleted[i])
		}
		wantToday := d.Key == "2024-01-03"
		if d.Today != wantToday {
			t.Errorf("day %d (%s): today = %v, want %v", i, d.Key, d.Today, wantToday)
		}
	}
}

func TestWeek_OutOfWeekDateDoesNotShiftWindow(t *testing.T) {
	done := map[string]struct{}{
		"2023-12-25": {}, // previous week
		"2024-01-08": {}, // next week
	}

	days := Week(wednesday, done)

	if days[0].Key != "2024-01-01" || days[6].Key != "2024-01-07" {
		t.Fatalf("window shifted: %s .. %s", days[0].Key, days[6].Key)
	}
	for _, d := range days {
		if d.Completed {
			t.Errorf("day %s should not be completed", d.Key)
		}
	}
}

func TestDateSet_FiltersUncompletedAndOutOfWeek(t *testing.T) {
	history := []models.HabitCompletion{
		{ID: "a", Date: "2024-01-01", Completed: true},
		{ID: "b", Date: "2024-01-02", Completed: false},
		{ID: "c", Date: "2023-12-31", Completed: true}, // Sunday of previous week
		{ID: "d", Date: "2024-01-03", Completed: true},
		{ID: "e", Date: "2024-01-03", Completed: true}, // duplicate date
	}

	got := DateSet(wednesday, history)

	if len(got) != 2 {
		t.Fatalf("expected 2 dates, got %d: %v", len(got), got)
	}
	for _, want := range []string{"2024-01-01", "2024-01-03"} {
		if _, ok := got[want]; !ok {
			t.Errorf("missing %s", want)
		}
	}
}
