package httpx

import (
	"net/http"

	"github.com/bvpstudios/verzechat/pkg/slogx"
)

// RecoverMiddleware converts a handler panic into a 500 response instead of
// tearing down the connection. The process keeps serving.
func RecoverMiddleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					slogx.FromContext(r.Context()).Error("handler panic",
						"panic", rec,
						"method", r.Method,
						"path", r.URL.Path,
					)
					ErrServerError.WriteError(w)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
