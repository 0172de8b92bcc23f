package models

// Session is the payload returned by the auth endpoints.
type Session struct {
	Token     string `json:"token"`
	UserID    string `json:"userId"`
	FirstName string `json:"firstName,omitempty"`
	Username  string `json:"username,omitempty"`
}

// UserProfile is the viewer's own profile.
type UserProfile struct {
	ID         string `json:"id"`
	TelegramID int64  `json:"telegramId,omitempty"`
	Username   string `json:"username,omitempty"`
	FirstName  string `json:"firstName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
	PhotoURL   string `json:"photoUrl,omitempty"`
	Language   string `json:"language,omitempty"`
}
