package chat_test

import (
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	chathttp "github.com/bvpstudios/verzechat/internal/chat/http"
	"github.com/bvpstudios/verzechat/internal/chat/service"
	"github.com/bvpstudios/verzechat/internal/chat/store"
	"github.com/bvpstudios/verzechat/internal/chat/store/drivers/sqlite"
	"github.com/bvpstudios/verzechat/pkg/chatsdk"
	"github.com/bvpstudios/verzechat/pkg/jwtx"
)

/*
 * Common helpers for chat service end-to-end tests. Each test gets a fresh
 * service instance on its own SQLite file, served over a real HTTP listener,
 * and talks to it exclusively through the chatsdk client.
 */

const (
	adminEmail    = "admin@example.com"
	adminUsername = "admin"
	adminPassword = "Admin123!"
)

// testEnv bundles the SDK client with the backing store so tests can look up
// server-assigned ids that the public API does not expose.
type testEnv struct {
	Client *chatsdk.Client
	Store  store.Store
}

// setupChatServer starts a fully wired chat service on an ephemeral port and
// returns an SDK client pointed at it. Everything is torn down with the test.
func setupChatServer(t *testing.T) *testEnv {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "chat.db") +
		"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	hs, err := jwtx.NewHS256([]byte("e2e-test-secret"))
	require.NoError(t, err)

	tokens := &service.TokenService{Signer: hs, Verifier: hs, TTL: jwtx.DefaultSessionTTL}

	router := chathttp.NewRouter(hs, "e2e", st, slog.New(slog.DiscardHandler))
	router.UserService = &service.UserService{
		Store:             st,
		Tokens:            tokens,
		IsPrivilegedEmail: func(email string) bool { return email == adminEmail },
	}
	router.MessageService = &service.MessageService{Store: st}
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testEnv{
		Client: chatsdk.NewClient(server.URL),
		Store:  st,
	}
}

// registerAndLogin creates an account and returns an authenticated session.
func registerAndLogin(t *testing.T, env *testEnv, username, password, email string) *chatsdk.Session {
	t.Helper()

	err := env.Client.Register(t.Context(), chatsdk.RegisterRequest{
		Username: username,
		Password: password,
		Email:    email,
	})
	require.NoError(t, err, "register %s should succeed", username)

	session, err := env.Client.Login(t.Context(), username, password)
	require.NoError(t, err, "login %s should succeed", username)
	require.NotEmpty(t, session.Token())

	return session
}

// loginAdmin provisions the allow-listed admin account and logs it in.
func loginAdmin(t *testing.T, env *testEnv) *chatsdk.Session {
	t.Helper()
	return registerAndLogin(t, env, adminUsername, adminPassword, adminEmail)
}

// userID looks up a server-assigned user id through the store.
func userID(t *testing.T, env *testEnv, username string) int64 {
	t.Helper()

	user, err := env.Store.Users().GetUserByUsername(t.Context(), username)
	require.NoError(t, err)
	return user.ID
}
