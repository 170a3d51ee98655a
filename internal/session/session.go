// Package session carries the authenticated admin session through
// context. The login shell sets the token once at sign-in and clears
// it at sign-out; nothing in this module reads ambient storage.
package session

import "context"

// tokenKey is the context key for the session token value.
type tokenKey struct{}

// WithToken returns a context carrying the session token.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// Token extracts the session token from the context. It returns an
// empty string if no session is present; callers treat that as an
// unauthenticated request, not an error.
func Token(ctx context.Context) string {
	if tok, ok := ctx.Value(tokenKey{}).(string); ok {
		return tok
	}
	return ""
}
