package service

import (
	"time"

	"github.com/bvpstudios/verzechat/internal/chat/domain"
	"github.com/bvpstudios/verzechat/pkg/jwtx"
)

// TokenService issues and verifies session tokens. Tokens are bound to the
// process-wide signing secret and carry the user's id, username and role;
// there is no revocation, a token stays valid until its expiry.
type TokenService struct {
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
	TTL      time.Duration
}

// Issue signs a session token for the given user.
func (s *TokenService) Issue(u domain.User) (string, error) {
	ttl := s.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}

	claims := jwtx.NewSessionClaims(u.ID, u.Username, string(u.Role), ttl, time.Now().UTC())
	return s.Signer.Sign(claims)
}

// Verify parses and validates a session token, returning its claims.
func (s *TokenService) Verify(raw string) (jwtx.Claims, error) {
	return s.Verifier.Verify(raw)
}
