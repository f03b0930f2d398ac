package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrEmptySecret = errors.New("jwtx: empty signing secret")

	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
)

// Signer is our interface for anything that can sign session tokens.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

// Verifier validates a token string and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// HS256 signs and verifies tokens with a single process-wide shared secret.
// Every token ever issued is bound to this secret: restart the service with a
// different secret and all outstanding sessions become invalid, which is the
// intended behavior (there is no revocation list).
type HS256 struct {
	secret []byte
}

// NewHS256 creates a symmetric signer/verifier from the shared secret.
func NewHS256(secret []byte) (*HS256, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	return &HS256{secret: secret}, nil
}

func (h *HS256) Alg() string { return jwt.SigningMethodHS256.Alg() }

// Sign produces a compact JWS string for the given claims.
func (h *HS256) Sign(claims Claims) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(h.secret)
}

// Verify parses and validates a compact token string. The signing method is
// pinned to HS256 so an attacker cannot downgrade to "none" or confuse the
// verifier with an asymmetric algorithm.
func (h *HS256) Verify(raw string) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrAlgMismatch
		}
		return h.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Claims{}, mapJWTError(err)
	}
	return claims, nil
}

func mapJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return ErrNotYetValid
	case errors.Is(err, jwt.ErrTokenUnverifiable), errors.Is(err, ErrAlgMismatch):
		return ErrAlgMismatch
	default:
		return ErrMalformed
	}
}
