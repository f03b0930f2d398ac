package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bvpstudios/verzechat/internal/chat/domain"
	"github.com/bvpstudios/verzechat/internal/chat/store"
	"github.com/bvpstudios/verzechat/pkg/cryptox"
	"github.com/bvpstudios/verzechat/pkg/slogx"
)

// UserService implements registration, login, username changes and the
// admin-only deletion. Password hashing runs inline on the request goroutine;
// the scheduler keeps it from stalling other requests.
type UserService struct {
	Store  store.Store
	Tokens *TokenService

	// IsPrivilegedEmail decides whether a registration email grants the
	// admin role. Injected so the allow-list lives in configuration, not in
	// registration logic.
	IsPrivilegedEmail func(email string) bool
}

// Register creates a new account. The username is validated, lowercased and
// must be unique; the password is stored only as a bcrypt hash. When the
// email is on the admin allow-list the role is elevated as a best-effort
// follow-up: if that secondary update fails the registration still succeeds
// and the store's state is the truth.
func (s *UserService) Register(ctx context.Context, username, password, email string) (domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return domain.User{}, ErrMissingCredentials
	}
	if !domain.ValidUsername(username) {
		return domain.User{}, ErrInvalidUsername
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.Store.Users().CreateUser(ctx, domain.User{
		Username:     domain.NormalizeUsername(username),
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUsernameTaken
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	if email != "" && s.IsPrivilegedEmail != nil && s.IsPrivilegedEmail(email) {
		if err := s.Store.Users().UpdateRoleByEmail(ctx, email, domain.RoleAdmin); err != nil {
			// Best effort: the account exists, elevation just didn't stick.
			slogx.FromContext(ctx).Warn("admin elevation failed",
				"user_id", user.ID, "err", err)
		} else {
			user.Role = domain.RoleAdmin
		}
	}

	return user, nil
}

// Login verifies credentials and returns a fresh session token.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.Store.Users().GetUserByUsername(ctx, domain.NormalizeUsername(username))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("lookup user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("verify password: %w", err)
	}

	token, err := s.Tokens.Issue(user)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// ChangeUsername renames the calling user. Outstanding tokens keep the old
// username claim until they expire; only the store is updated.
func (s *UserService) ChangeUsername(ctx context.Context, userID int64, username string) (string, error) {
	username = strings.TrimSpace(username)
	if !domain.ValidUsername(username) {
		return "", ErrInvalidUsername
	}

	normalized := domain.NormalizeUsername(username)
	if err := s.Store.Users().UpdateUsername(ctx, userID, normalized); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return "", ErrUsernameTaken
		}
		return "", fmt.Errorf("update username: %w", err)
	}
	return normalized, nil
}

// Delete hard-deletes a user by id. The target's messages keep their author
// reference and silently drop out of the feed. Deleting a nonexistent id is
// a no-op, matching the store.
func (s *UserService) Delete(ctx context.Context, userID int64) error {
	if err := s.Store.Users().DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
