package validation

import (
	"strings"
	"testing"

	"habitlink/internal/models"
)

func intPtr(n int) *int { return &n }

func TestValidateHabitRequest(t *testing.T) {
	cases := []struct {
		name    string
		req     models.HabitRequest
		wantErr bool
	}{
		{
			"valid daily",
			models.HabitRequest{Title: "Read", Cadence: models.CadenceDaily, Color: "#38bdf8"},
			false,
		},
		{
			"valid weekly",
			models.HabitRequest{Title: "Run", Cadence: models.CadenceWeekly, TimesPerWeek: intPtr(3)},
			false,
		},
		{
			"empty title",
			models.HabitRequest{Title: "   ", Cadence: models.CadenceDaily},
			true,
		},
		{
			"title too long",
			models.HabitRequest{Title: strings.Repeat("x", 81), Cadence: models.CadenceDaily},
			true,
		},
		{
			"daily with weekly target",
			models.HabitRequest{Title: "Read", Cadence: models.CadenceDaily, TimesPerWeek: intPtr(3)},
			true,
		},
		{
			"weekly without target",
			models.HabitRequest{Title: "Run", Cadence: models.CadenceWeekly},
			true,
		},
		{
			"weekly target zero",
			models.HabitRequest{Title: "Run", Cadence: models.CadenceWeekly, TimesPerWeek: intPtr(0)},
			true,
		},
		{
			"weekly target too high",
			models.HabitRequest{Title: "Run", Cadence: models.CadenceWeekly, TimesPerWeek: intPtr(8)},
			true,
		},
		{
			"bad color",
			models.HabitRequest{Title: "Read", Cadence: models.CadenceDaily, Color: "blue"},
			true,
		},
		{
			"empty color allowed",
			models.HabitRequest{Title: "Read", Cadence: models.CadenceDaily, Color: ""},
			false,
		},
		{
			"unknown cadence",
			models.HabitRequest{Title: "Read", Cadence: "MONTHLY"},
			true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateHabitRequest(tc.req)
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidateHabitRequest(%+v) error = %v, wantErr %v", tc.req, err, tc.wantErr)
			}
		})
	}
}
