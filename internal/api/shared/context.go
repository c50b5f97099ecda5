package shared

import (
	"context"
	"crypto/rand"
	"encoding/hex"
)

// ContextKey is the type for context values set by the API layer.
type ContextKey string

const (
	// UserIDContextKey carries the authenticated user's uid.
	UserIDContextKey ContextKey = "userID"

	// TraceIDKey carries the per-request trace id.
	TraceIDKey ContextKey = "traceID"

	// traceIDLength is the number of random bytes in a trace id.
	traceIDLength = 16
)

// SetTraceID adds a freshly generated trace ID to the context.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context, or "" if unset.
func GetTraceID(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDKey).(string)
	return traceID
}

// SetUserID adds the authenticated uid to the context.
func SetUserID(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, UserIDContextKey, uid)
}

// GetUserID retrieves the authenticated uid, or "" when the request
// was not authenticated.
func GetUserID(ctx context.Context) string {
	uid, _ := ctx.Value(UserIDContextKey).(string)
	return uid
}

func generateTraceID() string {
	b := make([]byte, traceIDLength)
	// rand.Read never fails on supported platforms.
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
