package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is the absolute lifetime of a session token. There is no
// refresh flow; once a token expires the user logs in again.
const DefaultSessionTTL = 2 * time.Hour

// Claims are the session-token claims. The custom fields mirror what the
// chat handlers need to authorize a request without a database round trip:
// who the user is and whether they hold the admin role.
type Claims struct {
	jwt.RegisteredClaims

	// UserID is the numeric id of the authenticated user.
	UserID int64 `json:"id"`

	// Username at the time the token was issued. A later username change
	// does not invalidate outstanding tokens.
	Username string `json:"username"`

	// Role is either "user" or "admin".
	Role string `json:"role"`
}

// NewSessionClaims builds minimally-correct session claims.
func NewSessionClaims(userID int64, username, role string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:   userID,
		Username: username,
		Role:     role,
	}
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't before nbf.
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}

	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}

	return nil
}
