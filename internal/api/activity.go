package api

import (
	"context"

	"habitlink/internal/models"
)

// ActivityFeed fetches the full event list in source order (newest-first).
func (c *Client) ActivityFeed(ctx context.Context) ([]models.ActivityEvent, error) {
	var events []models.ActivityEvent
	if err := c.get(ctx, "/api/activity", &events); err != nil {
		return nil, err
	}
	return events, nil
}

// ToggleActivityReaction toggles the viewer's emoji on an activity event and
// returns the authoritative summary list for that event.
func (c *Client) ToggleActivityReaction(ctx context.Context, activityID, emoji string) ([]models.ReactionSummary, error) {
	var summaries []models.ReactionSummary
	body := struct {
		Emoji string `json:"emoji"`
	}{Emoji: emoji}
	if err := c.post(ctx, "/api/activity/"+activityID+"/reactions", body, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}
