package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/MKhiriev/go-project-hub/models"
	sq "github.com/Masterminds/squirrel"
)

// projectRepository is the SQL implementation of [ProjectRepository] over the
// "projects" table.
type projectRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProjectRepository constructs a [ProjectRepository] backed by db.
func NewProjectRepository(db *DB, logger *logger.Logger) ProjectRepository {
	logger.Debug().Msg("creating project repository")
	return &projectRepository{
		db:     db,
		logger: logger,
	}
}

// CreateProject assigns an ID and timestamps and inserts the project.
// An unknown owner yields [ErrOwnerNotFound].
func (r *projectRepository) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	project.ID = r.db.ids.Generate()
	project.CreatedAt = r.db.now()
	project.UpdatedAt = project.CreatedAt

	query, args, err := r.db.insertProjectQuery(project)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.CreateProject").Msg("error building query")
		return models.Project{}, err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*projectRepository.CreateProject").Msg("error inserting project")
		return models.Project{}, r.db.classify(err)
	}

	return project, nil
}

// GetProjectsByOwner lists the projects owned by ownerID. An owner with no
// projects, known or not, yields an empty slice.
func (r *projectRepository) GetProjectsByOwner(ctx context.Context, ownerID string) ([]models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectProjectsQuery(sq.Eq{"owner_id": ownerID})
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.GetProjectsByOwner").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.GetProjectsByOwner").Msg("error querying projects")
		return nil, r.db.classify(err)
	}
	defer rows.Close()

	projects := make([]models.Project, 0)
	for rows.Next() {
		var project models.Project
		if err = scanProject(rows, &project); err != nil {
			log.Err(err).Str("func", "*projectRepository.GetProjectsByOwner").Msg("error scanning project")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		projects = append(projects, project)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*projectRepository.GetProjectsByOwner").Msg("error iterating projects")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return projects, nil
}

// GetProjectByID returns the project with the given id, or [ErrProjectNotFound].
func (r *projectRepository) GetProjectByID(ctx context.Context, id string) (models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectProjectsQuery(sq.Eq{"id": id})
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.GetProjectByID").Msg("error building query")
		return models.Project{}, err
	}

	var project models.Project
	err = scanProject(r.db.QueryRowContext(ctx, query, args...), &project)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Project{}, ErrProjectNotFound
	case err != nil:
		log.Err(err).Str("func", "*projectRepository.GetProjectByID").Msg("error finding project")
		return models.Project{}, r.db.classify(err)
	}

	return project, nil
}

// UpdateProject overwrites the mutable columns and bumps UpdatedAt. CreatedAt
// is taken from the argument as is.
func (r *projectRepository) UpdateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	project.UpdatedAt = r.db.now()

	query, args, err := r.db.updateProjectQuery(project)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.UpdateProject").Msg("error building query")
		return models.Project{}, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.UpdateProject").Msg("error updating project")
		return models.Project{}, r.db.classify(err)
	}

	if err = requireAffected(result, ErrProjectNotFound); err != nil {
		return models.Project{}, err
	}

	return project, nil
}

// DeleteProject removes the project with the given id, or returns
// [ErrProjectNotFound] when nothing was deleted.
func (r *projectRepository) DeleteProject(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.deleteProjectQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.DeleteProject").Msg("error building query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.DeleteProject").Msg("error deleting project")
		return r.db.classify(err)
	}

	return requireAffected(result, ErrProjectNotFound)
}

func requireAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return notFound
	}

	return nil
}

func scanProject(row rowScanner, p *models.Project) error {
	return row.Scan(&p.ID, &p.GroupName, &p.ProjectName, &p.Description,
		&p.StartDate, &p.EndDate, &p.Status, &p.OwnerID,
		&p.CreatedAt, &p.UpdatedAt)
}
