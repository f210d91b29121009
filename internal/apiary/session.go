package apiary

import "context"

type sessionKey struct{}

// WithSession attaches the acting player's id to ctx
func WithSession(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, sessionKey{}, userID)
}

// SessionFromContext returns the player id, or "" when there is no session
func SessionFromContext(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}
