package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/store"
	"github.com/MKhiriev/go-auth-service/internal/utils"
	"github.com/MKhiriev/go-auth-service/models"
)

// userService is the concrete implementation of UserService. It exposes the
// CRUD user-management operations over the user repository, always returning
// the public user shape.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a UserService backed by the given repository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Create registers a new user without issuing a token. The password is
// hashed before the record reaches the store, same as the signup path.
func (u *userService) Create(ctx context.Context, req models.SignupRequest) (models.PublicUser, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Name == "" || req.Password == "" {
		return models.PublicUser{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.PublicUser{}, fmt.Errorf("password hashing failed: %w", err)
	}

	createdUser, err := u.userRepository.CreateUser(ctx, models.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: passwordHash,
	})
	if err != nil {
		return models.PublicUser{}, err
	}

	return createdUser.Public(), nil
}

// List returns all users in their public shape.
func (u *userService) List(ctx context.Context) ([]models.PublicUser, error) {
	users, err := u.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	publicUsers := make([]models.PublicUser, 0, len(users))
	for _, user := range users {
		publicUsers = append(publicUsers, user.Public())
	}

	return publicUsers, nil
}

// Get resolves a single user by id.
func (u *userService) Get(ctx context.Context, id string) (models.PublicUser, error) {
	if id == "" {
		return models.PublicUser{}, ErrInvalidDataProvided
	}

	foundUser, err := u.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.PublicUser{}, err
	}

	return foundUser.Public(), nil
}

// Update applies a partial profile update (name and/or email). The password
// hash is not reachable through this path.
func (u *userService) Update(ctx context.Context, id string, update models.UserUpdate) (models.PublicUser, error) {
	if id == "" || update.IsEmpty() {
		return models.PublicUser{}, ErrInvalidDataProvided
	}

	updatedUser, err := u.userRepository.UpdateUser(ctx, id, update)
	if err != nil {
		return models.PublicUser{}, err
	}

	return updatedUser.Public(), nil
}

// Delete removes a user record. Returns store.ErrUserNotFound when the id
// does not resolve, so that the HTTP layer can answer 404.
func (u *userService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidDataProvided
	}

	deleted, err := u.userRepository.DeleteUser(ctx, id)
	if err != nil {
		return err
	}

	if !deleted {
		return store.ErrUserNotFound
	}

	return nil
}
