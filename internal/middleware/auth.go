package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/nitgconnect/backend/internal/identity"
	"github.com/nitgconnect/backend/internal/models"
)

type contextKey string

const (
	UserIDKey    contextKey = "userID"
	UserEmailKey contextKey = "userEmail"
	ClaimsKey    contextKey = "claims"
)

// BearerToken returns the token from an "Authorization: Bearer <token>" header, or "".
func BearerToken(r *http.Request) string {
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireToken rejects requests without a valid ID token and stores the caller's uid, email
// and claims in the request context.
func RequireToken(verifier identity.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") == "" {
				writeJSON(w, http.StatusUnauthorized, models.NewErrorResponse("Authorization header required"))
				return
			}

			token := BearerToken(r)
			if token == "" {
				writeJSON(w, http.StatusUnauthorized, models.NewErrorResponse("Invalid authorization header format"))
				return
			}

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil {
				if !errors.Is(err, identity.ErrInvalidToken) {
					log.Printf("[Auth] Verify error: %v", err)
				}
				writeJSON(w, http.StatusUnauthorized, models.NewErrorResponse("Invalid or expired token"))
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UID())
			ctx = context.WithValue(ctx, UserEmailKey, claims.Email())
			ctx = context.WithValue(ctx, ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID extracts user ID from context
func GetUserID(ctx context.Context) string {
	userID, ok := ctx.Value(UserIDKey).(string)
	if !ok {
		return ""
	}
	return userID
}

func GetUserEmail(ctx context.Context) string {
	email, _ := ctx.Value(UserEmailKey).(string)
	return email
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
