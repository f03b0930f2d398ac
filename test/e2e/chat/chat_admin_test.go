package chat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bvpstudios/verzechat/pkg/chatsdk"
)

// TestAdminDeletesUser checks the full deletion story: allow-listed admin
// removes an account, the victim can no longer log in, and their messages
// drop out of the feed.
func TestAdminDeletesUser(t *testing.T) {
	env := setupChatServer(t)

	admin := loginAdmin(t, env)
	victim := registerAndLogin(t, env, "mallory", "hunter22", "")
	require.NoError(t, victim.PostMessage(t.Context(), "soon gone"))
	require.NoError(t, admin.PostMessage(t.Context(), "staying"))

	require.NoError(t, admin.DeleteUser(t.Context(), userID(t, env, "mallory")))

	_, err := env.Client.Login(t.Context(), "mallory", "hunter22")
	require.ErrorIs(t, err, chatsdk.ErrNotFound)

	feed, err := env.Client.ListMessages(t.Context())
	require.NoError(t, err)
	require.Len(t, feed, 1)
	require.Equal(t, "staying", feed[0].Text)
}

func TestDeleteUserRequiresAdminRole(t *testing.T) {
	env := setupChatServer(t)

	regular := registerAndLogin(t, env, "alice", "hunter22", "")
	target := registerAndLogin(t, env, "bob", "hunter22", "")

	err := regular.DeleteUser(t.Context(), userID(t, env, "bob"))
	require.ErrorIs(t, err, chatsdk.ErrForbidden)

	// The target is untouched.
	require.NoError(t, target.PostMessage(t.Context(), "still here"))
}

func TestDeleteUserRequiresToken(t *testing.T) {
	env := setupChatServer(t)

	err := env.Client.NewSessionFromToken("").DeleteUser(t.Context(), 1)
	require.ErrorIs(t, err, chatsdk.ErrUnauthorized)
}

// Deleting an id that never existed still reports success.
func TestDeleteUnknownUserSucceeds(t *testing.T) {
	env := setupChatServer(t)

	admin := loginAdmin(t, env)
	require.NoError(t, admin.DeleteUser(t.Context(), 9999))
}
