package api

import (
	"errors"
	"net/http"

	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/service"
	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/service/auth"
	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes
// without leaking internal error types or messages to clients.
func MapErrorToStatusCode(err error) int {
	var unknownQuestion *service.UnknownQuestionError

	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return http.StatusUnauthorized

	case errors.Is(err, auth.ErrEmailNotAllowed):
		return http.StatusForbidden

	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrDeviceLinkNotFound),
		errors.Is(err, store.ErrSessionNotFound),
		errors.Is(err, service.ErrNoCardsForTopic),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.As(err, &unknownQuestion),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized client-facing message for
// the error. Unknown-question errors are the one case that echoes
// request data back (the offending id), which the contract requires.
func GetSafeErrorMessage(err error) string {
	var unknownQuestion *service.UnknownQuestionError

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"
	case errors.Is(err, auth.ErrInvalidToken):
		return "Invalid token"
	case errors.Is(err, auth.ErrEmailNotAllowed):
		return "Account not allowed"
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, store.ErrSessionNotFound):
		return "Quiz session not found"
	case errors.Is(err, service.ErrNoCardsForTopic):
		return "Topic has no cards"
	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"
	case errors.As(err, &unknownQuestion):
		return unknownQuestion.Error()
	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid request data"
	default:
		return "An internal error occurred"
	}
}
