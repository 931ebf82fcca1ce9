package auth

import (
	"net/http"
	"strings"

	"libraryapi/internal/httpx"
)

// Middleware guards admin routes. Any missing, malformed, or expired bearer
// token fails uniformly with 401.
func Middleware(svc *Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				httpx.JSONError(w, http.StatusUnauthorized, "Authentication failed: missing or invalid Authorization header", nil)
				return
			}
			token := strings.TrimPrefix(authHeader, "Bearer ")

			if err := svc.Verify(token); err != nil {
				httpx.JSONError(w, http.StatusUnauthorized, "Authentication failed: invalid or expired token", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
