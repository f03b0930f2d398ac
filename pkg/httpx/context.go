package httpx

import "context"

// Identity is the authenticated caller as established by AuthnMiddleware.
// It is derived entirely from verified token claims; no database lookup
// happens on the request path.
type Identity struct {
	ID       int64
	Username string
	Role     string
}

// IsAdmin reports whether the identity holds the admin role.
func (id Identity) IsAdmin() bool { return id.Role == RoleAdmin }

// Role names recognised by the authorization middleware.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type ctxKey struct{}

func contextWithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// IdentityFromContext returns the authenticated identity, if any. The second
// return is false on unauthenticated routes or when middleware didn't run.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok
}
