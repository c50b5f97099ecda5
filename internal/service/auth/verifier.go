package auth

import (
	"context"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the verified identity extracted from a bearer credential.
type Claims struct {
	// Subject is the verified subject id (Cognito "sub").
	Subject string

	// Email is the token's email claim when present. Access tokens
	// may not carry one.
	Email string

	// Raw holds the full claim set for callers that need more.
	Raw jwt.MapClaims
}

// TokenVerifier verifies a bearer credential and returns its claims.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Claims, error)
}

// Allowlist restricts sign-in to specific emails or email domains.
// An empty allowlist allows everyone.
type Allowlist struct {
	Emails  []string
	Domains []string
}

// Allows reports whether the given email passes the allowlist.
func (a Allowlist) Allows(email string) bool {
	if len(a.Emails) == 0 && len(a.Domains) == 0 {
		return true
	}

	email = strings.ToLower(strings.TrimSpace(email))
	for _, e := range a.Emails {
		if email == strings.ToLower(strings.TrimSpace(e)) {
			return true
		}
	}
	if _, domain, ok := strings.Cut(email, "@"); ok {
		for _, d := range a.Domains {
			if domain == strings.ToLower(strings.TrimPrefix(strings.TrimSpace(d), "@")) {
				return true
			}
		}
	}
	return false
}
