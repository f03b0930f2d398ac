package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bvpstudios/verzechat/internal/chat/store/drivers/sqlite"
	"github.com/bvpstudios/verzechat/pkg/jwtx"
)

// adminAllowList mirrors the production policy: a fixed set of emails that
// grant the admin role at registration time.
func adminAllowList(emails ...string) func(string) bool {
	set := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		set[e] = struct{}{}
	}
	return func(email string) bool {
		_, ok := set[email]
		return ok
	}
}

func newTestServices(t *testing.T) (*UserService, *MessageService) {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "chat.db") +
		"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	hs, err := jwtx.NewHS256([]byte("service-test-secret"))
	require.NoError(t, err)

	tokens := &TokenService{Signer: hs, Verifier: hs, TTL: jwtx.DefaultSessionTTL}
	users := &UserService{
		Store:             st,
		Tokens:            tokens,
		IsPrivilegedEmail: adminAllowList("admin@example.com"),
	}
	messages := &MessageService{Store: st}

	return users, messages
}
