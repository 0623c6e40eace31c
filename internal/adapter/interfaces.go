// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the project hub REST API.
//
// [HubAdapter] hides the HTTP details: request encoding, the bearer token, and
// the mapping of HTTP statuses to the sentinel errors in errors.go, so callers
// can use [errors.Is] (e.g. [ErrConflict] for 409, [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-project-hub/models"
)

// HubAdapter is a client of the project hub server.
type HubAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Register creates an account. It does not log the user in.
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)

	// Login authenticates and stores the returned token via SetToken. The
	// claims of the returned token are decoded without verification.
	Login(ctx context.Context, request models.LoginRequest) (models.Token, error)

	// Whoami calls the protected route with the stored token and returns the
	// identity the server decoded from it.
	Whoami(ctx context.Context) (models.Claims, error)

	GetUsers(ctx context.Context) ([]models.User, error)

	// GetUser returns nil and no error when the id is unknown.
	GetUser(ctx context.Context, id string) (*models.User, error)

	CreateProject(ctx context.Context, request models.ProjectRequest) (models.Project, error)
	GetProjectsByOwner(ctx context.Context, ownerID string) ([]models.Project, error)
	GetProjectsByID(ctx context.Context, id string) ([]models.Project, error)
	UpdateProject(ctx context.Context, actorID, id string, request models.ProjectRequest) (models.Project, error)
	DeleteProject(ctx context.Context, actorID, id string) error

	// Version returns the server's application version.
	Version(ctx context.Context) (string, error)
}
