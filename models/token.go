// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity carried inside a signed bearer token.
//
// The custom claims mirror the public user attributes. The embedded
// [jwt.RegisteredClaims] carry sub (equal to UserID), iat, exp and an
// optional iss.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`

	jwt.RegisteredClaims
}

// Token is the result of issuing or verifying a bearer token.
type Token struct {
	// SignedString is the compact JWS representation
	// (base64url header.payload.signature).
	SignedString string `json:"-"`

	// Claims holds the decoded identity.
	Claims Claims `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// ExpiresAt returns the expiry instant of the token, or the zero time if
// the token carries no exp claim.
func (t Token) ExpiresAt() time.Time {
	if t.Claims.ExpiresAt == nil {
		return time.Time{}
	}
	return t.Claims.ExpiresAt.Time
}
