// Package progress aggregates a habit's completion history into the
// Monday-aligned week strip shown on the home screen. Everything here is
// pure: (now, completion-date-set) in, 7 entries out.
package progress

import (
	"time"

	"habitlink/internal/constants"
	"habitlink/internal/models"
)

// Day is one entry of the week strip.
type Day struct {
	Date      time.Time
	Key       string // YYYY-MM-DD
	Today     bool
	Completed bool
}

// mondayOf returns midnight of the Monday of now's calendar week.
// Day-of-week is normalized to Monday=0…Sunday=6 regardless of the host
// locale's week-start convention.
func mondayOf(now time.Time) time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	offset := (int(now.Weekday()) + 6) % 7
	return midnight.AddDate(0, 0, -offset)
}

// WeekOf returns the seven days Monday..Sunday of the week containing now.
func WeekOf(now time.Time) [7]time.Time {
	monday := mondayOf(now)
	var days [7]time.Time
	for i := range days {
		days[i] = monday.AddDate(0, 0, i)
	}
	return days
}

// WeekKeys returns the date keys of now's week, used to discard history
// records from outside the displayed window.
func WeekKeys(now time.Time) map[string]struct{} {
	keys := make(map[string]struct{}, 7)
	for _, d := range WeekOf(now) {
		keys[d.Format(constants.DateFormat)] = struct{}{}
	}
	return keys
}

// Week builds the 7-entry strip. A date outside the displayed week never
// appears and never shifts the window; duplicates in done are harmless
// because membership, not count, is what is rendered.
func Week(now time.Time, done map[string]struct{}) [7]Day {
	todayKey := now.Format(constants.DateFormat)
	var days [7]Day
	for i, d := range WeekOf(now) {
		key := d.Format(constants.DateFormat)
		_, completed := done[key]
		days[i] = Day{
			Date:      d,
			Key:       key,
			Today:     key == todayKey,
			Completed: completed,
		}
	}
	return days
}

// DateSet reduces completion records to set membership over dates within
// now's week. Records flagged not-completed are skipped.
func DateSet(now time.Time, history []models.HabitCompletion) map[string]struct{} {
	week := WeekKeys(now)
	done := make(map[string]struct{})
	for _, rec := range history {
		if !rec.Completed {
			continue
		}
		if _, ok := week[rec.Date]; ok {
			done[rec.Date] = struct{}{}
		}
	}
	return done
}
