// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims is the claim set embedded in every issued JWT.
//
// It extends the standard registered claims (sub, iss, iat, exp) with the
// user's email and display name so that consumers can render an identity
// without an extra lookup. The subject claim always holds the user ID.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Email is the account email at issuance time. Informational only;
	// the authoritative value lives in the user directory.
	Email string `json:"email,omitempty"`

	// Name is the display name at issuance time.
	Name string `json:"name,omitempty"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
// Claims holds the decoded claim set after issuance or successful parsing.
type Token struct {
	// Claims is the decoded claim set of the token.
	Claims TokenClaims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// UserID returns the owner identifier carried in the "sub" claim.
func (t Token) UserID() string {
	return t.Claims.Subject
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
