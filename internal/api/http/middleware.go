package http

import (
	"net/http"
	"strings"

	"parnika-backend/internal/security"
)

// adminOnly requires a valid bearer session token on every admin route.
func adminOnly(tokens security.TokenManager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || token == "" {
			respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing session token"})
			return
		}
		if _, err := tokens.ValidateToken(token); err != nil {
			respondJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
			return
		}
		next.ServeHTTP(w, r)
	})
}
