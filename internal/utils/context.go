// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, JWT token generation and validation, and other
// common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/go-auth-service/models"
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

// AuthUserCtxKey is the key used to store the resolved authenticated identity
// in the request context. The access guard populates it after successful
// token verification; the local credential guard populates it after a
// successful password check.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.AuthUserCtxKey, user)
var AuthUserCtxKey = contextKey("authUser")

// GetAuthUserFromContext retrieves the authenticated user from the context.
//
// Returns the resolved identity and an ok flag:
//   - ok == true  — value is found and has the correct models.User type
//   - ok == false — value is missing or has an unexpected type
//
// The returned user never carries a password hash; guards attach only
// stripped identities.
func GetAuthUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(AuthUserCtxKey).(models.User)
	return user, ok
}
