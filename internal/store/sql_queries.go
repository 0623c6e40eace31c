package store

import (
	"fmt"

	"github.com/MKhiriev/go-project-hub/models"
	sq "github.com/Masterminds/squirrel"
)

var (
	userColumns    = []string{"id", "name", "email", "password_hash", "created_at"}
	projectColumns = []string{
		"id", "group_name", "project_name", "description",
		"start_date", "end_date", "status", "owner_id",
		"created_at", "updated_at",
	}
)

func (db *DB) insertUserQuery(user models.User) (string, []any, error) {
	return db.build(db.builder.
		Insert(models.User{}.TableName()).
		Columns(userColumns...).
		Values(user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt))
}

func (db *DB) selectUsersQuery(where sq.Sqlizer) (string, []any, error) {
	query := db.builder.
		Select(userColumns...).
		From(models.User{}.TableName())
	if where != nil {
		query = query.Where(where)
	}

	return db.build(query.OrderBy("created_at", "id"))
}

func (db *DB) insertProjectQuery(p models.Project) (string, []any, error) {
	return db.build(db.builder.
		Insert(models.Project{}.TableName()).
		Columns(projectColumns...).
		Values(p.ID, p.GroupName, p.ProjectName, p.Description,
			p.StartDate, p.EndDate, p.Status, p.OwnerID,
			p.CreatedAt, p.UpdatedAt))
}

func (db *DB) selectProjectsQuery(where sq.Sqlizer) (string, []any, error) {
	return db.build(db.builder.
		Select(projectColumns...).
		From(models.Project{}.TableName()).
		Where(where).
		OrderBy("created_at", "id"))
}

func (db *DB) updateProjectQuery(p models.Project) (string, []any, error) {
	return db.build(db.builder.
		Update(models.Project{}.TableName()).
		SetMap(sq.Eq{
			"group_name":   p.GroupName,
			"project_name": p.ProjectName,
			"description":  p.Description,
			"start_date":   p.StartDate,
			"end_date":     p.EndDate,
			"status":       p.Status,
			"owner_id":     p.OwnerID,
			"updated_at":   p.UpdatedAt,
		}).
		Where(sq.Eq{"id": p.ID}))
}

func (db *DB) deleteProjectQuery(id string) (string, []any, error) {
	return db.build(db.builder.
		Delete(models.Project{}.TableName()).
		Where(sq.Eq{"id": id}))
}

func (db *DB) build(query sq.Sqlizer) (string, []any, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return sqlStr, args, nil
}
