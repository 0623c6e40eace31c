package validators

import (
	"context"

	"github.com/MKhiriev/go-project-hub/models"
)

// ProjectValidator checks the identifiers a project operation depends on.
// Free-text fields and dates are accepted as is.
type ProjectValidator struct {
}

func NewProjectValidator() Validator {
	return &ProjectValidator{}
}

func (v *ProjectValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Project:
		return v.validateProject(value, fields...)
	case *models.Project:
		return v.validateProject(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ProjectValidator) validateProject(project models.Project, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerID}
	}

	for _, f := range fields {
		switch f {
		case FieldProjectID:
			if isBlank(project.ID) {
				return ErrEmptyProjectID
			}
		case FieldOwnerID:
			if isBlank(project.OwnerID) {
				return ErrEmptyOwnerID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
