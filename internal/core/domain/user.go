package domain

import "time"

// DefaultTrustScore is assigned to every freshly registered account.
const DefaultTrustScore = 50

// NotificationPreferences controls which channels a user wants to be
// contacted on when an item they reported has activity.
type NotificationPreferences struct {
	Email bool `json:"email" bson:"email"`
	Push  bool `json:"push" bson:"push"`
}

// User models a registered account.
//
// PasswordHash is never serialized to JSON and is excluded from default
// repository projections; repositories expose explicit "with password"
// lookups for credential checks.
type User struct {
	ID                      string                   `json:"id"`
	Name                    string                   `json:"name"`
	Email                   string                   `json:"email"`
	PasswordHash            string                   `json:"-"`
	ProfilePicture          string                   `json:"profile_picture,omitempty"`
	PhoneNumber             string                   `json:"phone_number,omitempty"`
	TrustScore              int                      `json:"trust_score"`
	NotificationPreferences *NotificationPreferences `json:"notification_preferences,omitempty"`
	CreatedAt               time.Time                `json:"created_at"`
	UpdatedAt               time.Time                `json:"updated_at"`
}
