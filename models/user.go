// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication.
// It contains identity attributes and the stored credential hash.
// The hash must never leave trusted boundaries.
type User struct {
	// ID is the opaque unique identifier assigned by the store on creation.
	ID string `json:"id"`

	// Name is the display name of the user. Not unique.
	Name string `json:"name"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// It is never serialized to JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Claims builds the identity claims that are embedded into a token
// issued for this user.
func (u User) Claims() Claims {
	return Claims{
		UserID: u.ID,
		Email:  u.Email,
		Name:   u.Name,
	}
}
