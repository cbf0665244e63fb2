// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/store"
	"github.com/MKhiriev/go-auth-service/internal/utils"
	"github.com/MKhiriev/go-auth-service/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It handles account creation, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// SignUp creates a new user account and issues a token for it.
//
// The plaintext password is hashed before the record is handed to the
// repository; nothing below this method ever sees plaintext. A duplicate
// email surfaces as [store.ErrEmailAlreadyExists] whether it was caught by a
// pre-check or by the unique index at insert time.
//
// Returns the auth response (public user + bearer token) or:
//   - ErrInvalidDataProvided if email, name, or password is empty.
//   - store.ErrEmailAlreadyExists if the email is taken.
//   - A wrapped storage error if the repository call fails.
func (a *authService) SignUp(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Name == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid signup data provided")
		return models.AuthResponse{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.AuthResponse{}, fmt.Errorf("password hashing failed: %w", err)
	}

	createdUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Warn().Str("email", req.Email).Msg("signup rejected: email already registered")
			return models.AuthResponse{}, err
		}

		log.Err(err).Msg("user creation ended with error")
		return models.AuthResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	createdUser.PasswordHash = ""

	return a.authResponse(ctx, createdUser)
}

// SignIn issues a token for an identity that was validated upstream by the
// local credential guard.
//
// Returns ErrInvalidCredentials if the identity is absent — this is the one
// condition the HTTP layer maps to a 401.
func (a *authService) SignIn(ctx context.Context, identity models.User) (models.AuthResponse, error) {
	if identity.ID == "" {
		return models.AuthResponse{}, ErrInvalidCredentials
	}

	return a.authResponse(ctx, identity)
}

// ValidateCredentials authenticates an email/password pair.
//
// It looks up the account including the stored hash and verifies the
// plaintext against it. Unknown email and wrong password both collapse into
// ErrInvalidCredentials so that callers cannot enumerate accounts. On success
// the returned identity has its password hash stripped; the hash never
// crosses the service boundary.
func (a *authService) ValidateCredentials(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindUserByEmailWithHash(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Msg("credential check failed: unknown email")
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.VerifyPassword(password, foundUser.PasswordHash) {
		log.Debug().Str("id", foundUser.ID).Msg("credential check failed: wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	foundUser.PasswordHash = ""

	return foundUser, nil
}

// ValidateByID re-resolves a token subject through the user directory.
//
// Supports the case where a user was deleted after token issuance: the guard
// must reject such tokens even though they still verify cryptographically.
// Returns [store.ErrUserNotFound] when the record no longer exists.
func (a *authService) ValidateByID(ctx context.Context, id string) (models.User, error) {
	if id == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	return foundUser, nil
}

// GetProfile resolves a user id to its public shape.
// Returns [store.ErrUserNotFound] if the id does not resolve.
func (a *authService) GetProfile(ctx context.Context, id string) (models.PublicUser, error) {
	foundUser, err := a.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.PublicUser{}, err
	}

	return foundUser.Public(), nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// expiry, and issuer claim. Expiry is kept distinguishable from other
// failures ([ErrTokenIsExpired] vs [ErrTokenIsExpiredOrInvalid]) for
// observability; both map to the same caller-visible rejection.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// authResponse issues a token for user and assembles the client-facing auth
// response. The identity inside the response is always the stripped public
// shape.
func (a *authService) authResponse(ctx context.Context, user models.User) (models.AuthResponse, error) {
	token, err := a.CreateToken(ctx, user)
	if err != nil {
		return models.AuthResponse{}, err
	}

	return models.AuthResponse{
		User:        user.Public(),
		AccessToken: token.SignedString,
		TokenType:   "Bearer",
		ExpiresIn:   a.tokenDuration.String(),
	}, nil
}
