package i18n

import (
	"testing"
	"time"
)

var now = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func TestRelativeParts_UnitPromotion(t *testing.T) {
	cases := []struct {
		name     string
		delta    time.Duration
		wantVal  int
		wantUnit Unit
	}{
		{"seconds", -45 * time.Second, -45, UnitSeconds},
		{"last second below minute", -59 * time.Second, -59, UnitSeconds},
		{"exactly a minute", -60 * time.Second, -1, UnitMinutes},
		{"minutes", -5 * time.Minute, -5, UnitMinutes},
		{"rounds up to the hour", -59*time.Minute - 45*time.Second, -1, UnitHours},
		{"exactly an hour", -time.Hour, -1, UnitHours},
		{"hours", -23 * time.Hour, -23, UnitHours},
		{"exactly a day", -24 * time.Hour, -1, UnitDays},
		{"days", -3 * 24 * time.Hour, -3, UnitDays},
		{"future minutes", 5 * time.Minute, 5, UnitMinutes},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, unit := RelativeParts(now.Add(tc.delta), now)
			if v != tc.wantVal || unit != tc.wantUnit {
				t.Errorf("RelativeParts(%v) = (%d, %v), want (%d, %v)",
					tc.delta, v, unit, tc.wantVal, tc.wantUnit)
			}
		})
	}
}

func TestRelativeParts_MonotonicWithinUnit(t *testing.T) {
	// Older instants never report a smaller magnitude when both resolve to
	// the same unit.
	deltas := []time.Duration{
		-2 * time.Minute, -5 * time.Minute, -20 * time.Minute, -59 * time.Minute,
	}
	prev := 0
	for _, d := range deltas {
		v, unit := RelativeParts(now.Add(d), now)
		if unit != UnitMinutes {
			continue
		}
		if mag := abs(v); mag < prev {
			t.Errorf("magnitude decreased for older delta %v: %d < %d", d, mag, prev)
		} else {
			prev = mag
		}
	}
}

func TestFormatRelative_English(t *testing.T) {
	en := Match("en")
	cases := []struct {
		delta time.Duration
		want  string
	}{
		{-3 * time.Second, "just now"},
		{-30 * time.Second, "30 seconds ago"},
		{-time.Minute, "1 minute ago"},
		{-5 * time.Minute, "5 minutes ago"},
		{-2 * time.Hour, "2 hours ago"},
		{-24 * time.Hour, "1 day ago"},
		{10 * time.Minute, "in 10 minutes"},
	}

	for _, tc := range cases {
		if got := en.FormatRelative(now.Add(tc.delta), now); got != tc.want {
			t.Errorf("FormatRelative(%v) = %q, want %q", tc.delta, got, tc.want)
		}
	}
}

func TestFormatRelative_Russian(t *testing.T) {
	ru := Match("ru_RU.UTF-8")
	cases := []struct {
		delta time.Duration
		want  string
	}{
		{-3 * time.Second, "только что"},
		{-time.Minute, "1 минуту назад"},
		{-2 * time.Minute, "2 минуты назад"},
		{-5 * time.Minute, "5 минут назад"},
		{-11 * time.Minute, "11 минут назад"},
		{-21 * time.Minute, "21 минуту назад"},
		{-2 * time.Hour, "2 часа назад"},
		{-5 * 24 * time.Hour, "5 дней назад"},
		{30 * time.Minute, "через 30 минут"},
	}

	for _, tc := range cases {
		if got := ru.FormatRelative(now.Add(tc.delta), now); got != tc.want {
			t.Errorf("FormatRelative(%v) = %q, want %q", tc.delta, got, tc.want)
		}
	}
}

func TestMatch_NormalizesPosixLocales(t *testing.T) {
	cases := []struct {
		input  string
		wantRU bool
	}{
		{"en", false},
		{"en_US.UTF-8", false},
		{"ru", true},
		{"ru_RU.UTF-8", true},
		{"ru-RU", true},
		{"", false},
		{"zz_ZZ", false},
	}

	for _, tc := range cases {
		loc := Match(tc.input)
		if got := loc.T("pullToRefresh") == phrasesRU["pullToRefresh"]; got != tc.wantRU {
			t.Errorf("Match(%q): russian = %v, want %v", tc.input, got, tc.wantRU)
		}
	}
}

func TestDayLabel_LocaleFormats(t *testing.T) {
	d := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	if got := Match("en").DayLabel(d); got != "Mar 5, 2024" {
		t.Errorf("en label = %q", got)
	}
	if got := Match("ru").DayLabel(d); got != "05.03.2024" {
		t.Errorf("ru label = %q", got)
	}
}

func TestT_FallsBackToEnglishThenKey(t *testing.T) {
	ru := Match("ru")
	if got := ru.T("nonexistent-key"); got != "nonexistent-key" {
		t.Errorf("unknown key = %q, want the key itself", got)
	}
	en := Match("en")
	if got := en.T("pullToRefresh"); got != "Pull to refresh" {
		t.Errorf("en phrase = %q", got)
	}
}
