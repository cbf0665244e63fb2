package store

import (
	"context"

	"github.com/MKhiriev/go-auth-service/models"
)

// UserRepository is the user directory contract consumed by the service layer.
//
// Lookup methods that do not end in WithHash return records with an empty
// PasswordHash; only the credential validator may ask for the hash.
type UserRepository interface {
	// CreateUser persists a new user record. The PasswordHash field must
	// already be hashed; the repository never sees plaintext passwords.
	// Returns ErrEmailAlreadyExists when the email unique index is violated,
	// including when the violation surfaces from a concurrent insert.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the given email, password hash
	// stripped. Returns ErrUserNotFound when no such user exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByEmailWithHash returns the user with the given email including
	// the stored password hash. Returns ErrUserNotFound when no such user
	// exists.
	FindUserByEmailWithHash(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the user with the given ID, password hash
	// stripped. Returns ErrUserNotFound when no such user exists.
	FindUserByID(ctx context.Context, id string) (models.User, error)

	// ListUsers returns all user records, password hashes stripped.
	ListUsers(ctx context.Context) ([]models.User, error)

	// UpdateUser applies a partial update to profile fields (never the
	// password hash) and returns the updated record. Returns ErrUserNotFound
	// when the id does not resolve and ErrEmailAlreadyExists when the new
	// email is taken.
	UpdateUser(ctx context.Context, id string, update models.UserUpdate) (models.User, error)

	// DeleteUser removes the user record. The bool result reports whether a
	// record was actually deleted.
	DeleteUser(ctx context.Context, id string) (bool, error)
}
