package domain

import (
	"regexp"
	"strings"
	"time"
)

// Role is the coarse access level of a user. There are exactly two.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID           int64
	Username     string // always stored lowercased
	Email        string // optional, not validated, not unique
	PasswordHash string // bcrypt encoded
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// usernameRE is the only input sanitization the system performs: 3-20 chars
// of letters, digits, underscore or dot.
var usernameRE = regexp.MustCompile(`^[a-zA-Z0-9_.]{3,20}$`)

// ValidUsername reports whether name satisfies the username format rule.
// Validation happens before normalization, so the rule is case-insensitive
// in effect even though usernames are stored lowercased.
func ValidUsername(name string) bool {
	return usernameRE.MatchString(name)
}

// NormalizeUsername maps a username to its canonical stored form. Uniqueness
// is case-insensitive because every write and lookup goes through this.
func NormalizeUsername(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
