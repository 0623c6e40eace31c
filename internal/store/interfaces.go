package store

import (
	"context"

	"github.com/MKhiriev/go-project-hub/models"
)

// UserRepository persists user accounts.
//
//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock
type UserRepository interface {
	// CreateUser stores user and returns it with ID and CreatedAt assigned.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
}

// ProjectRepository persists projects.
type ProjectRepository interface {
	// CreateProject stores project and returns it with ID, CreatedAt and
	// UpdatedAt assigned.
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	GetProjectsByOwner(ctx context.Context, ownerID string) ([]models.Project, error)
	GetProjectByID(ctx context.Context, id string) (models.Project, error)
	// UpdateProject overwrites every mutable column of the project with
	// project.ID and returns the stored representation.
	UpdateProject(ctx context.Context, project models.Project) (models.Project, error)
	DeleteProject(ctx context.Context, id string) error
}

// ErrorClassifier translates driver-specific errors into the sentinel errors
// of this package.
type ErrorClassifier interface {
	Classify(err error) error
}

// IDGenerator produces identifiers for new records.
type IDGenerator interface {
	Generate() string
}
