package chat_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bvpstudios/verzechat/pkg/chatsdk"
)

func TestFeedIsEmptyInitially(t *testing.T) {
	env := setupChatServer(t)

	feed, err := env.Client.ListMessages(t.Context())
	require.NoError(t, err)
	require.Empty(t, feed)
}

// TestFeedOrdering posts from two accounts and checks the window comes back
// in chronological order with the right authors.
func TestFeedOrdering(t *testing.T) {
	env := setupChatServer(t)

	alice := registerAndLogin(t, env, "alice", "hunter22", "")
	bob := registerAndLogin(t, env, "bob", "hunter22", "")

	require.NoError(t, alice.PostMessage(t.Context(), "first"))
	require.NoError(t, bob.PostMessage(t.Context(), "second"))
	require.NoError(t, alice.PostMessage(t.Context(), "third"))

	feed, err := env.Client.ListMessages(t.Context())
	require.NoError(t, err)
	require.Len(t, feed, 3)

	require.Equal(t, "first", feed[0].Text)
	require.Equal(t, "alice", feed[0].Username)
	require.Equal(t, "second", feed[1].Text)
	require.Equal(t, "bob", feed[1].Username)
	require.Equal(t, "third", feed[2].Text)
	require.False(t, feed[0].CreatedAt.After(feed[2].CreatedAt))
}

// TestFeedWindowCap posts past the window size and checks only the newest 50
// survive, oldest of the window first.
func TestFeedWindowCap(t *testing.T) {
	env := setupChatServer(t)

	alice := registerAndLogin(t, env, "alice", "hunter22", "")
	for i := 0; i < 55; i++ {
		require.NoError(t, alice.PostMessage(t.Context(), fmt.Sprintf("msg-%02d", i)))
	}

	feed, err := env.Client.ListMessages(t.Context())
	require.NoError(t, err)
	require.Len(t, feed, 50)
	require.Equal(t, "msg-05", feed[0].Text)
	require.Equal(t, "msg-54", feed[49].Text)
}

func TestPostMessageValidation(t *testing.T) {
	env := setupChatServer(t)

	alice := registerAndLogin(t, env, "alice", "hunter22", "")

	err := alice.PostMessage(t.Context(), "   ")
	require.ErrorIs(t, err, chatsdk.ErrBadRequest, "whitespace-only message")

	err = env.Client.NewSessionFromToken("garbage").PostMessage(t.Context(), "hi")
	require.ErrorIs(t, err, chatsdk.ErrUnauthorized, "bad token")
}
