package constants

const (
	AppName = "habitlink"

	// DateFormat is the canonical calendar-date key (YYYY-MM-DD) used for
	// completion records and weekly progress lookups.
	DateFormat = "2006-01-02"

	DefaultAPIBaseURL = "http://localhost:8080"

	// DefaultKeyringUser is the account name under which the session token
	// is stored in the OS keyring.
	DefaultKeyringUser = "session-token"

	// StartParamFriendPrefix marks a deep-link start parameter that carries
	// a friend-invite code.
	StartParamFriendPrefix = "friend_"
)

// Session states for the TUI.
type SessionState int

const (
	StateHome SessionState = iota
	StateFeed
	StateFriends
	StateNotifications
	StateHabitForm
	StateConfirmRemoveFriend
)
