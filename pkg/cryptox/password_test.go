package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"long password", strings.Repeat("a", 70)},
		{"empty password", ""},
		{"unicode password", "пароль🔒密码"},
		{"whitespace password", "   spaces   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			require.NoError(t, err)
			require.NotEmpty(t, hash)

			// bcrypt encodes algorithm version and cost into the hash
			require.True(t, strings.HasPrefix(hash, "$2a$10$"),
				"hash should be bcrypt with cost 10")

			cost, err := bcrypt.Cost([]byte(hash))
			require.NoError(t, err)
			require.Equal(t, PasswordHashCost, cost)
		})
	}
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	hash1, err := HashPassword("same-password")
	require.NoError(t, err)
	hash2, err := HashPassword("same-password")
	require.NoError(t, err)

	require.NotEqual(t, hash1, hash2, "each hash should use a fresh salt")
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	t.Run("matching password", func(t *testing.T) {
		require.NoError(t, VerifyPassword("correct horse battery staple", hash))
	})

	t.Run("wrong password", func(t *testing.T) {
		err := VerifyPassword("incorrect horse", hash)
		require.ErrorIs(t, err, ErrPasswordMismatch)
	})

	t.Run("empty password against real hash", func(t *testing.T) {
		err := VerifyPassword("", hash)
		require.ErrorIs(t, err, ErrPasswordMismatch)
	})

	t.Run("malformed hash", func(t *testing.T) {
		err := VerifyPassword("anything", "not-a-bcrypt-hash")
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrPasswordMismatch)
	})
}

func TestGeneratePassword(t *testing.T) {
	seen := make(map[string]struct{})
	for range 10 {
		pw, err := GeneratePassword()
		require.NoError(t, err)
		require.Len(t, pw, 12)

		_, dup := seen[pw]
		require.False(t, dup, "generated passwords should not repeat")
		seen[pw] = struct{}{}
	}
}
