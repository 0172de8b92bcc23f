package models

import "strings"

type ActivityKind string

const (
	ActivityCompleted ActivityKind = "COMPLETED"
	ActivityStreak    ActivityKind = "STREAK"
	ActivityRecord    ActivityKind = "RECORD"
)

// ActivityEvent is one entry of the social feed. CreatedAt is ISO text and
// CreatedAtEpochMS the same instant in epoch milliseconds.
type ActivityEvent struct {
	ID               string            `json:"id"`
	HabitID          string            `json:"habitId,omitempty"`
	UserID           string            `json:"userId"`
	ActorName        string            `json:"actorName"`
	ActorPhotoURL    string            `json:"actorPhotoUrl,omitempty"`
	OwnEvent         bool              `json:"ownEvent"`
	Kind             ActivityKind      `json:"type"`
	Message          string            `json:"message"`
	CreatedAt        string            `json:"createdAt"`
	CreatedAtEpochMS int64             `json:"createdAtEpochMs"`
	Reactions        []ReactionSummary `json:"reactions,omitempty"`
}

// ReactionSummary aggregates one emoji on one target: total count plus
// whether the viewer is among the reactors.
type ReactionSummary struct {
	Emoji string `json:"emoji"`
	Count int64  `json:"count"`
	Mine  bool   `json:"mine"`
}

// Friend is a symmetric relationship; no ordering invariant between sides.
type Friend struct {
	ID        string `json:"id"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	PhotoURL  string `json:"photoUrl,omitempty"`
}

// DisplayName prefers "First Last", falls back to @username, then "User".
func (f Friend) DisplayName() string {
	name := strings.TrimSpace(strings.Join(nonEmpty(f.FirstName, f.LastName), " "))
	if name != "" {
		return name
	}
	if f.Username != "" {
		return "@" + f.Username
	}
	return "User"
}

func nonEmpty(parts ...string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Invite is a single-use friend invitation. The server consumes the code on
// acceptance; the client additionally remembers handled codes per session.
type Invite struct {
	Code      string `json:"code"`
	InviteURL string `json:"inviteUrl"`
	ExpiresAt string `json:"expiresAt"`
}

type NotificationKind string

const NotificationReaction NotificationKind = "REACTION"

type Notification struct {
	ID               string           `json:"id"`
	Kind             NotificationKind `json:"type"`
	Message          string           `json:"message"`
	Read             bool             `json:"read"`
	ActivityID       string           `json:"activityId,omitempty"`
	ActorUserID      string           `json:"actorUserId,omitempty"`
	ActorName        string           `json:"actorName"`
	ActorPhotoURL    string           `json:"actorPhotoUrl,omitempty"`
	CreatedAt        string           `json:"createdAt"`
	CreatedAtEpochMS int64            `json:"createdAtEpochMs"`
}
