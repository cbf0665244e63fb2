package service

import (
	"context"

	"github.com/MKhiriev/go-auth-service/models"
)

// AuthService composes credential validation, token lifecycle, and the
// signup/signin/profile operations.
type AuthService interface {
	// SignUp creates a new account and immediately issues a token for it
	// (signup implies signin). The password is hashed before it reaches the
	// store. A taken email surfaces as store.ErrEmailAlreadyExists.
	SignUp(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error)

	// SignIn issues a token for an identity that was already validated
	// upstream (by the local credential guard). An absent identity yields
	// ErrInvalidCredentials.
	SignIn(ctx context.Context, identity models.User) (models.AuthResponse, error)

	// ValidateCredentials checks an email/password pair against the user
	// directory. Unknown email and wrong password are indistinguishable:
	// both yield ErrInvalidCredentials. On success the returned identity
	// carries no password hash.
	ValidateCredentials(ctx context.Context, email, password string) (models.User, error)

	// ValidateByID re-resolves a token subject through the user directory.
	// Returns store.ErrUserNotFound when the record no longer exists.
	ValidateByID(ctx context.Context, id string) (models.User, error)

	// GetProfile resolves a user id to its public shape.
	GetProfile(ctx context.Context, id string) (models.PublicUser, error)

	// CreateToken issues a signed JWT for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates and parses a raw JWT string.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService exposes the CRUD user-management operations.
type UserService interface {
	Create(ctx context.Context, req models.SignupRequest) (models.PublicUser, error)
	List(ctx context.Context) ([]models.PublicUser, error)
	Get(ctx context.Context, id string) (models.PublicUser, error)
	Update(ctx context.Context, id string, update models.UserUpdate) (models.PublicUser, error)
	Delete(ctx context.Context, id string) error
}
