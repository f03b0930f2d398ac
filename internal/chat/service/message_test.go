package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPost(t *testing.T) {
	t.Parallel()

	users, messages := newTestServices(t)

	u, err := users.Register(t.Context(), "poster", "pw12345", "")
	require.NoError(t, err)

	t.Run("trims and stores", func(t *testing.T) {
		m, err := messages.Post(t.Context(), u.ID, "  hello  ")
		require.NoError(t, err)
		require.Equal(t, "hello", m.Text)
		require.Equal(t, u.ID, m.UserID)
	})

	t.Run("rejects empty after trim", func(t *testing.T) {
		for _, text := range []string{"", "   ", "\n\t"} {
			_, err := messages.Post(t.Context(), u.ID, text)
			require.ErrorIs(t, err, ErrEmptyMessage, "text %q", text)
		}
	})
}

func TestListLatestChronological(t *testing.T) {
	t.Parallel()

	users, messages := newTestServices(t)

	u, err := users.Register(t.Context(), "historian", "pw12345", "")
	require.NoError(t, err)

	for i := range 60 {
		_, err := messages.Post(t.Context(), u.ID, fmt.Sprintf("entry %d", i))
		require.NoError(t, err)
	}

	feed, err := messages.ListLatest(t.Context())
	require.NoError(t, err)
	require.Len(t, feed, FeedLimit)

	// Ascending order: the most recent message is the last element.
	require.Equal(t, "entry 10", feed[0].Text)
	require.Equal(t, "entry 59", feed[len(feed)-1].Text)
	for i := 1; i < len(feed); i++ {
		require.Less(t, feed[i-1].ID, feed[i].ID)
	}
}

func TestListLatestEmpty(t *testing.T) {
	t.Parallel()

	_, messages := newTestServices(t)

	feed, err := messages.ListLatest(t.Context())
	require.NoError(t, err)
	require.Empty(t, feed)
}
