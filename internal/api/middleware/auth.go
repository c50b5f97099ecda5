package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/api/shared"
	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/redact"
	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/service/auth"
)

// AuthMiddleware gates user-scoped routes behind bearer token
// verification. With a nil verifier (local development, no identity
// pool configured) requests pass through unauthenticated.
type AuthMiddleware struct {
	verifier auth.TokenVerifier
}

// NewAuthMiddleware creates an AuthMiddleware. verifier may be nil to
// disable authentication.
func NewAuthMiddleware(verifier auth.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate verifies the Authorization header and adds the verified
// subject to the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	if m.verifier == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		claims, err := m.verifier.Verify(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token expired")
			case errors.Is(err, auth.ErrEmailNotAllowed):
				shared.RespondWithError(w, r, http.StatusForbidden, "Account not allowed")
			case errors.Is(err, auth.ErrInvalidToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			default:
				slog.Error("failed to verify token", "error", redact.Error(err))
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(shared.SetUserID(r.Context(), claims.Subject)))
	})
}
