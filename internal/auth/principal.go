package auth

import (
	"context"

	"github.com/google/uuid"
)

// Principal identifies the authenticated admin for the current request.
// It travels in the request context, never in package-level state.
type Principal struct {
	AdminID  uuid.UUID
	Username string
}

type contextKey struct{}

// WithPrincipal returns a context carrying the principal.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, contextKey{}, p)
}

// PrincipalFrom extracts the principal set by the auth middleware.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(contextKey{}).(Principal)
	return p, ok
}
