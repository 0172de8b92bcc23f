package i18n

import (
	"fmt"
	"math"
	"time"
)

// Unit is the time unit a relative timestamp resolved to.
type Unit int

const (
	UnitSeconds Unit = iota
	UnitMinutes
	UnitHours
	UnitDays
)

// RelativeParts picks the nearest unit for the delta between at and now,
// promoting seconds→minutes→hours→days so the magnitude stays below 60
// (24 for the hour→day step). The value is signed: negative means past.
func RelativeParts(at, now time.Time) (int, Unit) {
	sec := int(math.Round(at.Sub(now).Seconds()))
	if abs(sec) < 60 {
		return sec, UnitSeconds
	}
	min := int(math.Round(float64(sec) / 60))
	if abs(min) < 60 {
		return min, UnitMinutes
	}
	hr := int(math.Round(float64(min) / 60))
	if abs(hr) < 24 {
		return hr, UnitHours
	}
	return int(math.Round(float64(hr) / 24)), UnitDays
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// FormatRelative renders "5 minutes ago" / "in 2 hours" in this locale.
func (l Locale) FormatRelative(at, now time.Time) string {
	v, unit := RelativeParts(at, now)
	if l.ru {
		return formatRelativeRU(v, unit)
	}
	return formatRelativeEN(v, unit)
}

func formatRelativeEN(v int, unit Unit) string {
	n := abs(v)
	if unit == UnitSeconds && n < 10 {
		return "just now"
	}
	name := [...]string{"second", "minute", "hour", "day"}[unit]
	if n != 1 {
		name += "s"
	}
	if v < 0 {
		return fmt.Sprintf("%d %s ago", n, name)
	}
	return fmt.Sprintf("in %d %s", n, name)
}

func formatRelativeRU(v int, unit Unit) string {
	n := abs(v)
	if unit == UnitSeconds && n < 10 {
		return "только что"
	}
	forms := [...][3]string{
		{"секунду", "секунды", "секунд"},
		{"минуту", "минуты", "минут"},
		{"час", "часа", "часов"},
		{"день", "дня", "дней"},
	}[unit]
	name := pluralRU(n, forms)
	if v < 0 {
		return fmt.Sprintf("%d %s назад", n, name)
	}
	return fmt.Sprintf("через %d %s", n, name)
}

// pluralRU picks a Russian plural form: 1 → forms[0], 2-4 → forms[1],
// everything else (including 11-14) → forms[2].
func pluralRU(n int, forms [3]string) string {
	mod100 := n % 100
	if mod100 >= 11 && mod100 <= 14 {
		return forms[2]
	}
	switch n % 10 {
	case 1:
		return forms[0]
	case 2, 3, 4:
		return forms[1]
	default:
		return forms[2]
	}
}

// DayLabel renders a feed section heading for the calendar day of t.
func (l Locale) DayLabel(t time.Time) string {
	if l.ru {
		return t.Format("02.01.2006")
	}
	return t.Format("Jan 2, 2006")
}
