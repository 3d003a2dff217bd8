// Package token isolates session token issuance behind an interface so the
// signing secret and expiry policy can change without touching the auth
// service.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the fixed session lifetime. Tokens are never revoked
// server-side; they simply expire.
const DefaultTTL = 30 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// Claims carries the user identity inside a session token.
type Claims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

// Maker issues and verifies session tokens.
type Maker interface {
	Issue(userID string) (string, error)
	Parse(tokenStr string) (*Claims, error)
}

// JWTMaker signs HS256 tokens with a server-held secret.
type JWTMaker struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTMaker builds a JWTMaker. A non-positive ttl falls back to DefaultTTL.
func NewJWTMaker(secret string, ttl time.Duration) *JWTMaker {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &JWTMaker{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for userID with the configured expiry.
func (m *JWTMaker) Issue(userID string) (string, error) {
	now := m.now().UTC()
	claims := Claims{
		ID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Parse verifies the signature and expiry and returns the embedded claims.
func (m *JWTMaker) Parse(tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid || claims.ID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
