// Package adapter provides a Go client for the go-auth-service HTTP API.
// It is used by the CLI client and is suitable for service-to-service
// integration tests.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-auth-service/models"
)

// APIClient is the client-side contract for the auth service HTTP API.
//
// SignUp and SignIn store the issued bearer token inside the client, so
// subsequent authenticated calls need no explicit token handling.
type APIClient interface {
	// SetToken stores a bearer token for subsequent authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently held by the client.
	Token() string

	// SignUp registers a new account and stores the issued token.
	SignUp(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error)

	// SignIn authenticates with email/password and stores the issued token.
	SignIn(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)

	// Profile returns the identity of the token holder.
	Profile(ctx context.Context) (models.PublicUser, error)

	// Logout tells the server the session is over; the token is discarded
	// client-side.
	Logout(ctx context.Context) error

	// ListUsers returns all registered users.
	ListUsers(ctx context.Context) ([]models.PublicUser, error)

	// GetUser returns a single user by id.
	GetUser(ctx context.Context, id string) (models.PublicUser, error)

	// UpdateUser applies a partial profile update.
	UpdateUser(ctx context.Context, id string, update models.UserUpdate) (models.PublicUser, error)

	// DeleteUser removes a user account.
	DeleteUser(ctx context.Context, id string) error
}
