// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// project hub server handlers and its client.
//
// All Msg* constants are human-readable strings written into HTTP response
// bodies. Keeping them in one place ensures consistent wording throughout the
// API and lets the client recognise them.
package app

const (
	// MsgAPIIsWorking is the plain-text body of the index route.
	MsgAPIIsWorking = "API is working!"

	// MsgTokenRequired is returned with 401 when the Authorization header or
	// its token segment is missing.
	MsgTokenRequired = "Authorization token is required"

	// MsgTokenIsExpiredOrInvalid is returned with 403 when a bearer token
	// fails verification.
	MsgTokenIsExpiredOrInvalid = "Invalid or expired token"

	// MsgRegisterFieldsRequired is returned when registration lacks a name,
	// an email or a password.
	MsgRegisterFieldsRequired = "Name, email, and password are required"

	// MsgEmailAlreadyExists is returned with 409 on duplicate registration.
	MsgEmailAlreadyExists = "User with this email already exists"

	// MsgInvalidEmailPassword is the single generic login rejection.
	MsgInvalidEmailPassword = "Invalid email or password."

	MsgInvalidJSON = "Invalid JSON was passed"

	MsgProtectedRoute = "This is a protected route"

	MsgProjectDeleted = "Project deleted successfully"

	MsgUserNotFound    = "User not found"
	MsgProjectNotFound = "Project not found"
	MsgOwnerNotFound   = "Owner not found"
	MsgNotProjectOwner = "Only the project owner can modify it"

	// MsgInternalServerError is used when a failure carries no message.
	MsgInternalServerError = "An unexpected error occurred"
)
