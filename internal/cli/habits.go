package cli

import (
	"fmt"
	"strings"
	"time"

	"habitlink/internal/logger"
	"habitlink/internal/models"
	"habitlink/internal/progress"
	"habitlink/internal/validation"
)

type HabitListCmd struct {
	All bool `help:"Include archived habits."`
}

func (cmd *HabitListCmd) Run(appCtx *Context) error {
	ctx, cancel := callCtx()
	defer cancel()

	habits, err := appCtx.API.Habits(ctx)
	if err != nil {
		return err
	}
	if err := appCtx.Cache.SaveHabits(habits); err != nil {
		logger.Warn("Failed to cache habits snapshot", "error", err)
	}

	shown := 0
	for _, h := range habits {
		if h.Archived && !cmd.All {
			continue
		}
		shown++
		marker := " "
		if h.Archived {
			marker = "A"
		}
		fmt.Printf("%s %s %-28s streak %d (best %d)  [%s]\n",
			marker, h.Icon, h.Title, h.CurrentStreak, h.BestStreak, h.ID)
	}
	if shown == 0 {
		fmt.Println(appCtx.Locale.T("noHabits"))
	}
	return nil
}

type HabitAddCmd struct {
	Title        string `arg:"" help:"Habit title."`
	Weekly       int    `help:"Weekly target count 1-7; omit for a daily habit." default:"0"`
	Color        string `help:"Display color." default:"#38bdf8"`
	Icon         string `help:"Display icon." default:"✨"`
}

func (cmd *HabitAddCmd) Run(appCtx *Context) error {
	req := models.HabitRequest{
		Title:   strings.TrimSpace(cmd.Title),
		Cadence: models.CadenceDaily,
		Color:   cmd.Color,
		Icon:    cmd.Icon,
	}
	if cmd.Weekly > 0 {
		req.Cadence = models.CadenceWeekly
		times := cmd.Weekly
		req.TimesPerWeek = &times
	}
	if err := validation.ValidateHabitRequest(req); err != nil {
		return err
	}

	ctx, cancel := callCtx()
	defer cancel()

	habit, err := appCtx.API.CreateHabit(ctx, req)
	if err != nil {
		return err
	}
	fmt.Printf("Created %s %s [%s]\n", habit.Icon, habit.Title, habit.ID)
	return nil
}

type HabitCompleteCmd struct {
	ID string `arg:"" help:"Habit id."`
}

func (cmd *HabitCompleteCmd) Run(appCtx *Context) error {
	ctx, cancel := callCtx()
	defer cancel()

	if err := appCtx.API.CompleteHabit(ctx, cmd.ID); err != nil {
		return err
	}
	fmt.Println("Completed for today. ✓")
	return nil
}

type HabitWeekCmd struct {
	ID string `arg:"" help:"Habit id."`
}

// Run renders the Monday-aligned week strip for one habit.
func (cmd *HabitWeekCmd) Run(appCtx *Context) error {
	ctx, cancel := callCtx()
	defer cancel()

	history, err := appCtx.API.HabitHistory(ctx, cmd.ID)
	if err != nil {
		return err
	}

	now := time.Now()
	week := progress.Week(now, progress.DateSet(now, history))
	var blocks, labels []string
	for _, day := range week {
		block := "▱"
		if day.Completed {
			block = "▰"
		}
		label := day.Date.Format("Mon")
		if day.Today {
			label = strings.ToUpper(label)
		}
		blocks = append(blocks, block)
		labels = append(labels, label)
	}
	fmt.Println(strings.Join(blocks, " "))
	fmt.Println(strings.Join(labels, " "))
	return nil
}

type HabitStatsCmd struct {
	ID string `arg:"" help:"Habit id."`
}

func (cmd *HabitStatsCmd) Run(appCtx *Context) error {
	ctx, cancel := callCtx()
	defer cancel()

	stats, err := appCtx.API.HabitStats(ctx, cmd.ID)
	if err != nil {
		return err
	}
	fmt.Printf("This week:  %d/%d (%.0f%%)\n", stats.CompletedThisWeek, stats.TargetThisWeek, stats.CompletionPercentWeek)
	fmt.Printf("This month: %d/%d (%.0f%%)\n", stats.CompletedThisMonth, stats.TargetThisMonth, stats.CompletionPercentMonth)
	fmt.Printf("Streak: %d (best %d)\n", stats.CurrentStreak, stats.BestStreak)
	return nil
}
