package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-project-hub/internal/validators"
	"github.com/MKhiriev/go-project-hub/models"
)

// ProjectValidationService checks project identifiers before they reach the
// wrapped ProjectService.
type ProjectValidationService struct {
	inner     ProjectService
	validator validators.Validator
}

func NewProjectValidationService() ProjectServiceWrapper {
	return &ProjectValidationService{
		validator: validators.NewProjectValidator(),
	}
}

func (v *ProjectValidationService) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	if err := v.validator.Validate(ctx, project, validators.FieldOwnerID); err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateProject(ctx, project)
}

func (v *ProjectValidationService) GetProjectsByOwner(ctx context.Context, ownerID string) ([]models.Project, error) {
	return v.inner.GetProjectsByOwner(ctx, ownerID)
}

func (v *ProjectValidationService) GetProjectsByID(ctx context.Context, id string) ([]models.Project, error) {
	return v.inner.GetProjectsByID(ctx, id)
}

func (v *ProjectValidationService) UpdateProject(ctx context.Context, actorID string, project models.Project) (models.Project, error) {
	if err := v.validator.Validate(ctx, project, validators.FieldProjectID); err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateProject(ctx, actorID, project)
}

func (v *ProjectValidationService) DeleteProject(ctx context.Context, actorID, id string) error {
	if err := v.validator.Validate(ctx, models.Project{ID: id}, validators.FieldProjectID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.DeleteProject(ctx, actorID, id)
}

func (v *ProjectValidationService) Wrap(wrapper ProjectService) ProjectService {
	v.inner = wrapper
	return v
}
