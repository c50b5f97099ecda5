// Package auth verifies bearer credentials and resolves them to a
// verified subject and claim set. The rest of the application only
// consumes the resulting Claims; how they were verified is this
// package's concern.
package auth

import "errors"

// Authentication errors returned by token verification.
var (
	// ErrInvalidToken is returned when a token fails signature,
	// issuer or audience validation.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token is past its expiry.
	ErrExpiredToken = errors.New("token expired")

	// ErrEmailNotAllowed is returned when a verified token carries an
	// email outside the configured allowlist.
	ErrEmailNotAllowed = errors.New("email not allowed")
)
