// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionSecretCtxKey is the key used to store the opaque session secret
// read from the session cookie. The backend adapter forwards it on every
// call made on behalf of the browser.
var SessionSecretCtxKey = contextKey("sessionSecret")

// WithSessionSecret returns a copy of ctx carrying secret.
// An empty secret returns ctx unchanged.
//
// Example usage:
//
//	ctx = utils.WithSessionSecret(ctx, cookie.Value)
func WithSessionSecret(ctx context.Context, secret string) context.Context {
	if secret == "" {
		return ctx
	}
	return context.WithValue(ctx, SessionSecretCtxKey, secret)
}

// WithoutSessionSecret returns a copy of ctx in which no session secret is
// visible, even if a parent context carries one.
func WithoutSessionSecret(ctx context.Context) context.Context {
	return context.WithValue(ctx, SessionSecretCtxKey, "")
}

// GetSessionSecretFromContext retrieves the session secret from the context.
//
// Returns the secret and an ok flag:
//   - ok == true: a non-empty secret is present
//   - ok == false: value is missing, empty or has an unexpected type
func GetSessionSecretFromContext(ctx context.Context) (string, bool) {
	secret, ok := ctx.Value(SessionSecretCtxKey).(string)
	return secret, ok && secret != ""
}
