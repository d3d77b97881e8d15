package handler

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"ledger-admin/internal/auth"
	"ledger-admin/internal/errors"
)

// RequireAuth rejects requests without a valid bearer token and stores
// the authenticated principal in the request context. Handlers read it
// back with auth.PrincipalFrom; nothing is kept in ambient state.
func RequireAuth(tokens *auth.TokenManager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(tokenString) == "" {
				writeError(w, errors.ErrUnauthorized)
				return
			}

			principal, err := tokens.Verify(strings.TrimSpace(tokenString))
			if err != nil {
				writeError(w, errors.NewAppError(errors.Unauthorized, "invalid or expired token"))
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
		})
	}
}
