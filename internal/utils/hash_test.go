// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"testing"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	password := "super-secret-password"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "" {
		t.Fatal("hash result is empty")
	}
	if hash == password {
		t.Fatal("hash must not equal the plaintext password")
	}

	if !VerifyPassword(password, hash) {
		t.Error("freshly generated hash must verify against its own password")
	}
}

// TestHashPassword_SaltRandomization verifies that hashing the same password
// twice produces two different stored values, and that both still verify.
// Equal stored hashes would mean the salt is not random.
func TestHashPassword_SaltRandomization(t *testing.T) {
	password := "same-password"

	hash1, err := HashPassword(password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	hash2, err := HashPassword(password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if hash1 == hash2 {
		t.Error("two hashes of the same password must differ")
	}

	if !VerifyPassword(password, hash1) {
		t.Error("first hash must verify")
	}
	if !VerifyPassword(password, hash2) {
		t.Error("second hash must verify")
	}
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := HashPassword("")
	if !errors.Is(err, ErrEmptyPassword) {
		t.Fatalf("expected ErrEmptyPassword, got %v", err)
	}
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("correct-password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if VerifyPassword("wrong-password", hash) {
		t.Error("wrong password must not verify")
	}
}

// TestVerifyPassword_MalformedHash verifies that garbage in the hash column
// yields false instead of a panic or a distinguishable error.
func TestVerifyPassword_MalformedHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{"empty hash", ""},
		{"not a bcrypt hash", "plain-text-value"},
		{"truncated hash", "$2a$10$abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if VerifyPassword("any-password", tt.hash) {
				t.Error("malformed hash must not verify")
			}
		})
	}
}
