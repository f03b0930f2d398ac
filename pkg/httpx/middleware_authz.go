package httpx

import "net/http"

// RequireRole gates a handler behind a role check on the authenticated
// identity. It must run after AuthnMiddleware; an unauthenticated request is
// treated as a missing token rather than a role failure.
func RequireRole(role string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFromContext(r.Context())
			if !ok {
				Unauthorized("Missing token").WriteError(w)
				return
			}

			if id.Role != role {
				Forbidden("Not allowed").WriteError(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
