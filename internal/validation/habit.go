// Package validation checks habit payloads before they go over the wire, so
// obviously bad input fails fast with a usable message instead of a server
// round trip.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"habitlink/internal/models"
)

const (
	MaxTitleLength = 80
	MaxWeeklyTimes = 7
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidateHabitRequest checks a create/update payload. The server enforces
// the same rules; this only catches them before a round trip.
func ValidateHabitRequest(req models.HabitRequest) error {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return fmt.Errorf("habit title cannot be empty")
	}
	if len([]rune(title)) > MaxTitleLength {
		return fmt.Errorf("habit title exceeds %d characters", MaxTitleLength)
	}

	switch req.Cadence {
	case models.CadenceDaily:
		if req.TimesPerWeek != nil {
			return fmt.Errorf("a daily habit has no weekly target")
		}
	case models.CadenceWeekly:
		if req.TimesPerWeek == nil {
			return fmt.Errorf("a weekly habit needs a weekly target")
		}
		if *req.TimesPerWeek < 1 || *req.TimesPerWeek > MaxWeeklyTimes {
			return fmt.Errorf("weekly target must be between 1 and %d, got %d", MaxWeeklyTimes, *req.TimesPerWeek)
		}
	default:
		return fmt.Errorf("unknown cadence %q", req.Cadence)
	}

	if req.Color != "" && !hexColor.MatchString(req.Color) {
		return fmt.Errorf("color must be a hex value like #38bdf8, got %q", req.Color)
	}
	return nil
}
