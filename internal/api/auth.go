package api

import (
	"context"

	"habitlink/internal/models"
)

// AuthHost exchanges the host's opaque init data for a session.
func (c *Client) AuthHost(ctx context.Context, initData string) (models.Session, error) {
	var sess models.Session
	body := struct {
		InitData string `json:"initData"`
	}{InitData: initData}
	if err := c.post(ctx, "/api/auth/telegram", body, &sess); err != nil {
		return models.Session{}, err
	}
	return sess, nil
}

// AuthDev signs in against the development endpoint, for running outside the
// host surface.
func (c *Client) AuthDev(ctx context.Context, telegramID int64, firstName, username string) (models.Session, error) {
	var sess models.Session
	body := struct {
		TelegramID int64  `json:"telegramId"`
		FirstName  string `json:"firstName"`
		Username   string `json:"username"`
	}{TelegramID: telegramID, FirstName: firstName, Username: username}
	if err := c.post(ctx, "/api/auth/dev", body, &sess); err != nil {
		return models.Session{}, err
	}
	return sess, nil
}

// MyProfile fetches the viewer's own profile.
func (c *Client) MyProfile(ctx context.Context) (models.UserProfile, error) {
	var profile models.UserProfile
	if err := c.get(ctx, "/api/users/me", &profile); err != nil {
		return models.UserProfile{}, err
	}
	return profile, nil
}
