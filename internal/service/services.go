package service

import (
	"github.com/MKhiriev/go-project-hub/internal/config"
	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/MKhiriev/go-project-hub/internal/store"
	"github.com/MKhiriev/go-project-hub/models"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	ProjectService ProjectService
	AppInfoService AppInfoService
}

// NewServices builds the service layer over storages. Auth and project
// services are wrapped with their validation decorators.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthValidationService().Wrap(NewAuthService(storages.UserRepository, cfg.App, logger)),
		UserService:    NewUserService(storages.UserRepository, logger),
		ProjectService: NewProjectValidationService().Wrap(NewProjectService(storages.ProjectRepository, logger)),
		AppInfoService: appInfoService,
	}, nil
}
