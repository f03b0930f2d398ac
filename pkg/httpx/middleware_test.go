package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bvpstudios/verzechat/pkg/jwtx"
)

func newTestVerifier(t *testing.T) *jwtx.HS256 {
	t.Helper()
	h, err := jwtx.NewHS256([]byte("middleware-test-secret"))
	require.NoError(t, err)
	return h
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthnMiddleware(t *testing.T) {
	t.Parallel()

	h := newTestVerifier(t)

	t.Run("missing header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", nil)

		Chain(okHandler(), AuthnMiddleware(h)).ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.JSONEq(t, `{"error":"Missing token"}`, rec.Body.String())
	})

	t.Run("non-bearer header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwdw==")

		Chain(okHandler(), AuthnMiddleware(h)).ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")

		Chain(okHandler(), AuthnMiddleware(h)).ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.JSONEq(t, `{"error":"Invalid token"}`, rec.Body.String())
	})

	t.Run("expired token", func(t *testing.T) {
		raw, err := h.Sign(jwtx.NewSessionClaims(1, "alice", RoleUser, time.Hour, time.Now().Add(-2*time.Hour)))
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Authorization", "Bearer "+raw)

		Chain(okHandler(), AuthnMiddleware(h)).ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token injects identity", func(t *testing.T) {
		raw, err := h.Sign(jwtx.NewSessionClaims(7, "alice", RoleAdmin, time.Hour, time.Now()))
		require.NoError(t, err)

		var got Identity
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFromContext(r.Context())
			require.True(t, ok)
			got = id
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Authorization", "Bearer "+raw)

		Chain(inner, AuthnMiddleware(h)).ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, Identity{ID: 7, Username: "alice", Role: RoleAdmin}, got)
		require.True(t, got.IsAdmin())
	})
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	h := newTestVerifier(t)

	t.Run("admin passes", func(t *testing.T) {
		raw, err := h.Sign(jwtx.NewSessionClaims(1, "root", RoleAdmin, time.Hour, time.Now()))
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		req.Header.Set("Authorization", "Bearer "+raw)

		Chain(okHandler(), AuthnMiddleware(h), RequireRole(RoleAdmin)).ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("regular user is forbidden", func(t *testing.T) {
		raw, err := h.Sign(jwtx.NewSessionClaims(2, "bob", RoleUser, time.Hour, time.Now()))
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		req.Header.Set("Authorization", "Bearer "+raw)

		Chain(okHandler(), AuthnMiddleware(h), RequireRole(RoleAdmin)).ServeHTTP(rec, req)
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.JSONEq(t, `{"error":"Not allowed"}`, rec.Body.String())
	})

	t.Run("no identity in context", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/", nil)

		Chain(okHandler(), RequireRole(RoleAdmin)).ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRecoverMiddleware(t *testing.T) {
	t.Parallel()

	panicky := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	require.NotPanics(t, func() {
		Chain(panicky, RecoverMiddleware()).ServeHTTP(rec, req)
	})
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}
