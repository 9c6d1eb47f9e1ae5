// Package utils provides general-purpose helpers used across the
// application: context keys, JWT signing and validation, password hashing,
// HTTP response writing and HTTP client initialization.
package utils

import (
	"context"

	"github.com/kashishbhadauriya/Careersphere/models"
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

// ClaimsCtxKey is the key the auth middleware stores the session claims under.
var ClaimsCtxKey = contextKey("claims")

// WithClaims returns a copy of ctx carrying the given claims.
func WithClaims(ctx context.Context, claims models.Claims) context.Context {
	return context.WithValue(ctx, ClaimsCtxKey, claims)
}

// GetClaimsFromContext retrieves the session claims from the context.
//
// ok is false when the value is missing, has an unexpected type or
// carries an empty user id.
func GetClaimsFromContext(ctx context.Context) (models.Claims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(models.Claims)
	if !ok || claims.ID == "" {
		return models.Claims{}, false
	}
	return claims, true
}
