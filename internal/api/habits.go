package api

import (
	"context"
	"net/http"

	"habitlink/internal/models"
)

func (c *Client) Habits(ctx context.Context) ([]models.Habit, error) {
	var habits []models.Habit
	if err := c.get(ctx, "/api/habits", &habits); err != nil {
		return nil, err
	}
	return habits, nil
}

// HabitHistory fetches the completion records for one habit.
func (c *Client) HabitHistory(ctx context.Context, habitID string) ([]models.HabitCompletion, error) {
	var history []models.HabitCompletion
	if err := c.get(ctx, "/api/habits/"+habitID+"/history", &history); err != nil {
		return nil, err
	}
	return history, nil
}

func (c *Client) CreateHabit(ctx context.Context, req models.HabitRequest) (models.Habit, error) {
	var habit models.Habit
	if err := c.post(ctx, "/api/habits", req, &habit); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

func (c *Client) UpdateHabit(ctx context.Context, id string, req models.HabitRequest) (models.Habit, error) {
	var habit models.Habit
	if err := c.do(ctx, http.MethodPut, "/api/habits/"+id, req, &habit); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

// CompleteHabit records today's completion for the habit.
func (c *Client) CompleteHabit(ctx context.Context, id string) error {
	return c.post(ctx, "/api/habits/"+id+"/complete", nil, nil)
}

func (c *Client) HabitStats(ctx context.Context, id string) (models.HabitStats, error) {
	var stats models.HabitStats
	if err := c.get(ctx, "/api/habits/"+id+"/stats", &stats); err != nil {
		return models.HabitStats{}, err
	}
	return stats, nil
}
