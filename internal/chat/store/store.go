package store

import (
	"context"
	"errors"

	"github.com/bvpstudios/verzechat/internal/chat/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today,
// maybe postgres later) implement this. Every handler performs at most one
// logical write, so there is no transaction surface: per-statement atomicity
// from the driver is the only isolation the system relies on.
type Store interface {
	Users() Users
	Messages() Messages

	// ApplyMigrations creates or upgrades the schema. Safe to run on every
	// process start; it never drops existing data.
	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// CreateUser inserts a new user and returns it with the store-assigned id.
	// A username collision (case-insensitive, usernames are stored lowercased)
	// returns ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) (domain.User, error)

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// GetUserByUsername looks a user up by their stored (lowercased) username.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// UpdateUsername mutates the username and bumps updated_at.
	// Returns ErrAlreadyExists when the name is taken.
	UpdateUsername(ctx context.Context, userID int64, username string) error

	// UpdateRoleByEmail sets the role of every user with the given email.
	// Used by the registration allow-list elevation; email is not unique.
	UpdateRoleByEmail(ctx context.Context, email string, role domain.Role) error

	// DeleteUser hard-deletes a user. Messages keep their author reference.
	// Deleting an id that does not exist is not an error.
	DeleteUser(ctx context.Context, userID int64) error

	// CountUsers returns the total number of users.
	CountUsers(ctx context.Context) (int64, error)
}

type Messages interface {
	// CreateMessage appends a message to the global feed and returns it with
	// the store-assigned id and timestamp.
	CreateMessage(ctx context.Context, userID int64, text string) (domain.Message, error)

	// ListLatest returns up to limit messages joined with their author's
	// username, newest first. Messages whose author has been deleted are
	// excluded by the join.
	ListLatest(ctx context.Context, limit int) ([]domain.FeedMessage, error)
}
