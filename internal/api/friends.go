package api

import (
	"context"
	"net/http"

	"habitlink/internal/models"
)

func (c *Client) Friends(ctx context.Context) ([]models.Friend, error) {
	var friends []models.Friend
	if err := c.get(ctx, "/api/friends", &friends); err != nil {
		return nil, err
	}
	return friends, nil
}

// CreateInvite mints a single-use invite code with a shareable URL.
func (c *Client) CreateInvite(ctx context.Context) (models.Invite, error) {
	var invite models.Invite
	if err := c.post(ctx, "/api/friends/invite", nil, &invite); err != nil {
		return models.Invite{}, err
	}
	return invite, nil
}

// AcceptInvite consumes the code server-side and returns the new friend.
func (c *Client) AcceptInvite(ctx context.Context, code string) (models.Friend, error) {
	var friend models.Friend
	body := struct {
		Code string `json:"code"`
	}{Code: code}
	if err := c.post(ctx, "/api/friends/accept", body, &friend); err != nil {
		return models.Friend{}, err
	}
	return friend, nil
}

func (c *Client) RemoveFriend(ctx context.Context, friendID string) error {
	return c.do(ctx, http.MethodDelete, "/api/friends/"+friendID, nil, nil)
}

func (c *Client) FriendProfile(ctx context.Context, friendID string) (models.Friend, error) {
	var friend models.Friend
	if err := c.get(ctx, "/api/friends/"+friendID+"/profile", &friend); err != nil {
		return models.Friend{}, err
	}
	return friend, nil
}

func (c *Client) FriendHabits(ctx context.Context, friendID string) ([]models.Habit, error) {
	var habits []models.Habit
	if err := c.get(ctx, "/api/friends/"+friendID+"/habits", &habits); err != nil {
		return nil, err
	}
	return habits, nil
}

func (c *Client) FriendHabitStats(ctx context.Context, friendID, habitID string) (models.HabitStats, error) {
	var stats models.HabitStats
	if err := c.get(ctx, "/api/friends/"+friendID+"/habits/"+habitID+"/stats", &stats); err != nil {
		return models.HabitStats{}, err
	}
	return stats, nil
}

// HabitReactions fetches the reaction summaries for a friend's habit.
func (c *Client) HabitReactions(ctx context.Context, friendID, habitID string) ([]models.ReactionSummary, error) {
	var summaries []models.ReactionSummary
	if err := c.get(ctx, "/api/friends/"+friendID+"/habits/"+habitID+"/reactions", &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

// ToggleHabitReaction toggles the viewer's emoji on a friend's habit and
// returns the authoritative summary list.
func (c *Client) ToggleHabitReaction(ctx context.Context, friendID, habitID, emoji string) ([]models.ReactionSummary, error) {
	var summaries []models.ReactionSummary
	body := struct {
		Emoji string `json:"emoji"`
	}{Emoji: emoji}
	if err := c.post(ctx, "/api/friends/"+friendID+"/habits/"+habitID+"/reactions", body, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}
