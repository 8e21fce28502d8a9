// Package utils provides helpers shared across the application: typed
// context keys, JSON response writing, session token handling, id
// generation and the outbound HTTP client.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, so keys from other
// packages never collide with ours.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// SessionIDCtxKey is the key under which the authenticated session id is
// stored by the session middleware.
var SessionIDCtxKey = contextKey("sessionID")

// WithSessionID returns a copy of ctx carrying sessionID.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, SessionIDCtxKey, sessionID)
}

// GetSessionIDFromContext returns the session id stored in ctx. ok is false
// when the value is missing, empty or of an unexpected type.
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDCtxKey).(string)
	return sessionID, ok && sessionID != ""
}
