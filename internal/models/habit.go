package models

type HabitCadence string

const (
	CadenceDaily  HabitCadence = "DAILY"
	CadenceWeekly HabitCadence = "WEEKLY"
)

// Habit is a server-owned habit resource. Streaks are computed server-side
// and consumed as-is.
type Habit struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Cadence       HabitCadence `json:"type"`
	TimesPerWeek  *int         `json:"timesPerWeek"`
	Color         string       `json:"color"`
	Icon          string       `json:"icon"`
	ImageURL      string       `json:"imageUrl,omitempty"`
	Archived      bool         `json:"archived"`
	CurrentStreak int          `json:"currentStreak"`
	BestStreak    int          `json:"bestStreak"`
	CreatedAt     string       `json:"createdAt"`
}

// HabitRequest is the create/update payload.
type HabitRequest struct {
	Title        string       `json:"title"`
	Cadence      HabitCadence `json:"type"`
	TimesPerWeek *int         `json:"timesPerWeek"`
	Color        string       `json:"color"`
	Icon         string       `json:"icon"`
	Archived     bool         `json:"archived"`
}

// HabitCompletion is one history record. At most one record per (habit, date)
// is meaningful; duplicates are tolerated downstream as set membership.
type HabitCompletion struct {
	ID        string `json:"id"`
	Date      string `json:"date"` // YYYY-MM-DD, no time of day
	Completed bool   `json:"completed"`
	CreatedAt string `json:"createdAt"`
}

// HabitStats is the server-computed progress summary for a habit.
type HabitStats struct {
	CompletedThisWeek      int     `json:"completedThisWeek"`
	TargetThisWeek         int     `json:"targetThisWeek"`
	CompletedThisMonth     int     `json:"completedThisMonth"`
	TargetThisMonth        int     `json:"targetThisMonth"`
	CompletionPercentWeek  float64 `json:"completionPercentWeek"`
	CompletionPercentMonth float64 `json:"completionPercentMonth"`
	CurrentStreak          int     `json:"currentStreak"`
	BestStreak             int     `json:"bestStreak"`
}
