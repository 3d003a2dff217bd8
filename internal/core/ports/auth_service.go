package ports

import (
	"context"

	"github.com/findly-app/lostfound-api/internal/core/domain"
)

// AuthResult bundles the profile projection and a fresh session token.
type AuthResult struct {
	User  *domain.User
	Token string
}

// AuthService defines the account use cases. Each call is an independent
// read-modify-write against the store; no state is shared between requests.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*domain.User, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}
