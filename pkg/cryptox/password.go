package cryptox

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt work factor used for all password hashes.
// Existing accounts keep whatever cost they were hashed with (bcrypt encodes
// salt and cost in the hash itself), so changing this only affects new hashes.
const PasswordHashCost = 10

// ErrPasswordMismatch is returned by VerifyPassword when the plaintext does
// not match the stored hash.
var ErrPasswordMismatch = errors.New("cryptox: password does not match")

// HashPassword generates a salted bcrypt hash of the given plaintext.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return "", fmt.Errorf("cryptox: hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password against a bcrypt hash.
// Returns nil on match, ErrPasswordMismatch on mismatch, or another error
// if the stored hash is malformed.
func VerifyPassword(password, encodedHash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	return fmt.Errorf("cryptox: verify password: %w", err)
}

// GeneratePassword returns a random alphanumeric password. Handy for
// provisioning throwaway accounts in tests and tooling.
func GeneratePassword() (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	const length = 12
	password := make([]byte, length)
	for i := range password {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", fmt.Errorf("failed to generate random password: %w", err)
		}
		password[i] = charset[n.Int64()]
	}
	return string(password), nil
}
