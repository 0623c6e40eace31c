package service

import (
	"context"

	"github.com/MKhiriev/go-project-hub/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, id string) (models.User, error)
}

// ProjectService manages projects. Update and delete are performed on behalf
// of actorID and succeed only when actorID owns the stored project.
type ProjectService interface {
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	GetProjectsByOwner(ctx context.Context, ownerID string) ([]models.Project, error)
	// GetProjectsByID returns zero or one project.
	GetProjectsByID(ctx context.Context, id string) ([]models.Project, error)
	UpdateProject(ctx context.Context, actorID string, project models.Project) (models.Project, error)
	DeleteProject(ctx context.Context, actorID, id string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// logging or validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// ProjectServiceWrapper defines middleware composition for ProjectService.
type ProjectServiceWrapper interface {
	Wrap(ProjectService) ProjectService
}
