package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/fitportal/fitportal/internal/domain"
)

// AdminTokenVerifier validates admin bearer tokens.
type AdminTokenVerifier interface {
	VerifyAdminToken(token string) error
}

var _ AdminTokenVerifier = (domain.AuthService)(nil)

// RequireAdmin wraps a handler so it only runs with a valid admin bearer
// token.
func RequireAdmin(verifier AdminTokenVerifier, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			unauthorized(w, "Authorization header is required")
			return
		}

		if err := verifier.VerifyAdminToken(token); err != nil {
			unauthorized(w, "Invalid or expired token")
			return
		}

		next(w, r)
	}
}

// bearerToken extracts the token from an "Authorization: Bearer x" header.
func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
