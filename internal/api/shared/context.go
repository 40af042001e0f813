// Package shared holds helpers used by handlers and middleware alike.
package shared

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/phrazzld/mesto-api/internal/domain"
)

// ContextKey is the type for context values owned by the API layer.
type ContextKey string

const (
	// UserIDContextKey is the context key under which the auth middleware
	// stores the authenticated account's ID. Nothing else from the account
	// record is attached.
	UserIDContextKey ContextKey = "userID"

	// TraceIDKey is the key for the trace ID in the request context.
	TraceIDKey ContextKey = "traceID"
)

// traceIDLength is the number of random bytes in a trace ID (32 hex chars).
const traceIDLength = 16

// SetTraceID adds a fresh trace ID to the context for correlating logs and
// error responses.
func SetTraceID(ctx context.Context) context.Context {
	b := make([]byte, traceIDLength)
	if _, err := rand.Read(b); err != nil {
		// Extremely unlikely; a request without a trace ID is still served.
		return ctx
	}
	return context.WithValue(ctx, TraceIDKey, hex.EncodeToString(b))
}

// GetTraceID retrieves the trace ID from the context, or "" if absent.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// UserIDFromContext extracts the authenticated account ID placed in the
// context by the auth middleware.
func UserIDFromContext(ctx context.Context) (domain.ID, bool) {
	userID, ok := ctx.Value(UserIDContextKey).(domain.ID)
	if !ok || userID.IsZero() {
		return "", false
	}
	return userID, true
}
