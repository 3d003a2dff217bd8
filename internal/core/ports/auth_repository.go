package ports

import (
	"context"
	"time"

	"github.com/findly-app/lostfound-api/internal/core/domain"
)

// ProfileUpdate carries the mutable profile fields. Nil pointers mean
// "leave the stored value unchanged".
type ProfileUpdate struct {
	Name                    *string
	Email                   *string
	PhoneNumber             *string
	ProfilePicture          *string
	NotificationPreferences *domain.NotificationPreferences
}

// Empty reports whether the update would change nothing.
func (u ProfileUpdate) Empty() bool {
	return u.Name == nil && u.Email == nil && u.PhoneNumber == nil &&
		u.ProfilePicture == nil && u.NotificationPreferences == nil
}

// UserRepository defines persistence for user accounts.
//
// Password hashes are excluded from every lookup except the explicit
// "WithPassword" variants used for credential checks.
type UserRepository interface {
	// Create inserts a new user and returns the stored record (with ID).
	// Returns domain.ErrDuplicateUser when the email is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByEmailWithPassword(ctx context.Context, email string) (*domain.User, error)
	FindByIDWithPassword(ctx context.Context, id string) (*domain.User, error)
	// UpdateProfile applies the non-nil fields of update plus updated_at and
	// returns the updated record without the password hash.
	UpdateProfile(ctx context.Context, id string, update ProfileUpdate, updatedAt time.Time) (*domain.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string, updatedAt time.Time) error
}
