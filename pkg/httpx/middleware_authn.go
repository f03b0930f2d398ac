package httpx

import (
	"net/http"
	"strings"

	"github.com/bvpstudios/verzechat/pkg/jwtx"
	"github.com/bvpstudios/verzechat/pkg/slogx"
)

// AuthnMiddleware requires a valid bearer token and injects the resulting
// Identity into the request context. A missing Authorization header yields
// 401 "Missing token"; any verification failure yields 401 "Invalid token".
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				Unauthorized("Missing token").WriteError(w)
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("token verification failed", "err", err)
				Unauthorized("Invalid token").WriteError(w)
				return
			}

			if err := claims.ValidateExpiry(); err != nil {
				Unauthorized("Invalid token").WriteError(w)
				return
			}

			id := Identity{
				ID:       claims.UserID,
				Username: claims.Username,
				Role:     claims.Role,
			}
			next.ServeHTTP(w, r.WithContext(contextWithIdentity(ctx, id)))
		})
	}
}
