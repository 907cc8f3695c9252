package auth

import (
	"context"

	"github.com/causeconnect-dev/causeconnect/internal/models"
)

// CurrentUser is the request-scoped identity extracted from a verified token.
type CurrentUser struct {
	ID    uint        `json:"id"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

// A private key type so no other package can collide with the identity entry.
type contextKey struct{ name string }

var userCtxKey = &contextKey{"user"}

// WithUser returns a context carrying the authenticated identity.
func WithUser(ctx context.Context, user *CurrentUser) context.Context {
	return context.WithValue(ctx, userCtxKey, user)
}

// ForContext returns the identity set by the auth middleware, or nil for
// unauthenticated requests.
func ForContext(ctx context.Context) *CurrentUser {
	user, _ := ctx.Value(userCtxKey).(*CurrentUser)
	return user
}
