package middleware

import (
	"net/http"
	"strings"

	"github.com/tala-app/backend/internal/auth"
	"github.com/tala-app/backend/internal/observability"
)

// RequireAuth creates a middleware that validates the Bearer token and
// injects the authenticated user ID into the request context. Requests
// without a valid token are rejected with 401.
func RequireAuth(jwt *auth.JWTManager) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			userID, _, err := jwt.ValidateAccessToken(token)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			ctx := observability.WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
