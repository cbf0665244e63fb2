package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers every negative credential outcome: unknown
	// email, wrong password, absent identity. Callers must not be able to
	// tell which one occurred.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
)
