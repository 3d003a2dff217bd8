package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/findly-app/lostfound-api/internal/core/domain"
	"github.com/findly-app/lostfound-api/internal/core/ports"
)

// ProfileCache is an optional read-through cache for profile lookups.
// Failures are advisory; the store remains the source of truth.
type ProfileCache interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	Set(ctx context.Context, user *domain.User) error
	Invalidate(ctx context.Context, userID string) error
}

// AuthService implements registration, login, and profile management.
type AuthService struct {
	repo     ports.UserRepository
	tokens   TokenIssuer
	cache    ProfileCache // may be nil
	validate *validator.Validate
}

// TokenIssuer is the session-token primitive the service depends on.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

func NewAuthService(repo ports.UserRepository, tokens TokenIssuer, cache ProfileCache) *AuthService {
	return &AuthService{
		repo:     repo,
		tokens:   tokens,
		cache:    cache,
		validate: validator.New(),
	}
}

// Register creates a new account and issues a session token. The returned
// user never carries the password hash.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*ports.AuthResult, error) {
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", domain.ErrValidation)
	}
	if err := s.validate.Var(email, "email"); err != nil {
		return nil, fmt.Errorf("%w: malformed email", domain.ErrValidation)
	}

	// Pre-check keeps the common case cheap; the unique index on email is the
	// backstop against concurrent registration.
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrDuplicateUser
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		TrustScore:   domain.DefaultTrustScore,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	tok, err := s.tokens.Issue(created.ID)
	if err != nil {
		return nil, err
	}

	created.PasswordHash = ""
	return &ports.AuthResult{User: created, Token: tok}, nil
}

// Login verifies credentials and issues a session token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmailWithPassword(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &ports.AuthResult{User: user, Token: tok}, nil
}

// GetProfile fetches a user by identifier, reading through the cache when
// one is configured.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, userID); err == nil && cached != nil {
			return cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, user)
	}
	return user, nil
}

// UpdateProfile applies a partial field set. Nil fields leave the stored
// value unchanged.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, update ports.ProfileUpdate) (*domain.User, error) {
	if update.Empty() {
		return s.GetProfile(ctx, userID)
	}
	if update.Email != nil {
		if err := s.validate.Var(*update.Email, "email"); err != nil {
			return nil, fmt.Errorf("%w: malformed email", domain.ErrValidation)
		}
	}

	user, err := s.repo.UpdateProfile(ctx, userID, update, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, userID)
	}
	return user, nil
}

// ChangePassword replaces the stored hash after verifying the current
// password. Existing session tokens stay valid until natural expiry.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("%w: new password is required", domain.ErrValidation)
	}

	user, err := s.repo.FindByIDWithPassword(ctx, userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, userID, string(hash), time.Now().UTC()); err != nil {
		return err
	}

	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, userID)
	}
	return nil
}
