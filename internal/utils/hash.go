// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword is returned by HashPassword when the plaintext is empty.
// An empty password is always a caller bug; hashing it would silently create
// an account nobody intended.
var ErrEmptyPassword = errors.New("password must not be empty")

// HashPassword hashes a plaintext password with bcrypt.
//
// bcrypt embeds a random salt into every hash, so two calls with the same
// input produce different stored values. Callers must never compare hashes
// for equality; use VerifyPassword instead.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// VerifyPassword reports whether the plaintext password matches the stored
// bcrypt hash.
//
// The comparison is constant-time inside bcrypt. Any malformed or truncated
// hash yields false rather than an error: the caller treats every negative
// outcome as "wrong credentials" and must not be able to distinguish why.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
