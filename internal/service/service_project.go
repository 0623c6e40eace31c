package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/MKhiriev/go-project-hub/internal/store"
	"github.com/MKhiriev/go-project-hub/models"
)

type projectService struct {
	projectRepository store.ProjectRepository
	logger            *logger.Logger
}

func NewProjectService(projectRepository store.ProjectRepository, logger *logger.Logger) ProjectService {
	return &projectService{
		projectRepository: projectRepository,
		logger:            logger,
	}
}

func (s *projectService) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	created, err := s.projectRepository.CreateProject(ctx, project)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("owner_id", project.OwnerID).Msg("project creation failed")
		return models.Project{}, fmt.Errorf("project creation failed: %w", err)
	}

	return created, nil
}

func (s *projectService) GetProjectsByOwner(ctx context.Context, ownerID string) ([]models.Project, error) {
	projects, err := s.projectRepository.GetProjectsByOwner(ctx, ownerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("owner_id", ownerID).Msg("listing projects by owner failed")
		return nil, fmt.Errorf("listing projects by owner failed: %w", err)
	}

	return projects, nil
}

func (s *projectService) GetProjectsByID(ctx context.Context, id string) ([]models.Project, error) {
	project, err := s.projectRepository.GetProjectByID(ctx, id)
	if errors.Is(err, store.ErrProjectNotFound) {
		return []models.Project{}, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("project_id", id).Msg("project search by id failed")
		return nil, fmt.Errorf("project search by id failed: %w", err)
	}

	return []models.Project{project}, nil
}

// UpdateProject replaces the stored project. An empty OwnerID keeps the
// current owner, any other value reassigns the project.
func (s *projectService) UpdateProject(ctx context.Context, actorID string, project models.Project) (models.Project, error) {
	existing, err := s.ownedProject(ctx, actorID, project.ID)
	if err != nil {
		return models.Project{}, err
	}

	if project.OwnerID == "" {
		project.OwnerID = existing.OwnerID
	}
	project.CreatedAt = existing.CreatedAt

	updated, err := s.projectRepository.UpdateProject(ctx, project)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("project_id", project.ID).Msg("project update failed")
		return models.Project{}, fmt.Errorf("project update failed: %w", err)
	}

	return updated, nil
}

func (s *projectService) DeleteProject(ctx context.Context, actorID, id string) error {
	if _, err := s.ownedProject(ctx, actorID, id); err != nil {
		return err
	}

	if err := s.projectRepository.DeleteProject(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("project_id", id).Msg("project deletion failed")
		return fmt.Errorf("project deletion failed: %w", err)
	}

	return nil
}

// ownedProject loads the project and checks that actorID owns it.
func (s *projectService) ownedProject(ctx context.Context, actorID, id string) (models.Project, error) {
	log := logger.FromContext(ctx)

	project, err := s.projectRepository.GetProjectByID(ctx, id)
	if err != nil {
		log.Err(err).Str("project_id", id).Msg("project ownership lookup failed")
		return models.Project{}, fmt.Errorf("project ownership lookup failed: %w", err)
	}

	if project.OwnerID != actorID {
		log.Warn().Str("project_id", id).Str("actor_id", actorID).Msg("user does not own the project")
		return models.Project{}, ErrNotProjectOwner
	}

	return project, nil
}
