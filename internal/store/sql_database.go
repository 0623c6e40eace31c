package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/MKhiriev/go-project-hub/internal/utils"
	"github.com/MKhiriev/go-project-hub/migrations"
	sq "github.com/Masterminds/squirrel"
)

// Supported SQL dialects. The values double as goose dialect names.
const (
	DialectPostgres = "pgx"
	DialectSQLite   = "sqlite3"
)

// Unique constraint guarding users.email, as named by each dialect.
const (
	postgresUserEmailConstraint = "users_email_key"
	sqliteUserEmailConstraint   = "users.email"
)

var _ IDGenerator = (*utils.UUIDGenerator)(nil)

// DB wraps a *sql.DB together with everything the repositories need to talk
// to one concrete dialect.
type DB struct {
	*sql.DB
	dialect         string
	errorClassifier ErrorClassifier
	builder         sq.StatementBuilderType
	ids             IDGenerator
	now             func() time.Time
	logger          *logger.Logger
}

func newDB(conn *sql.DB, dialect string, classifier ErrorClassifier, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == DialectPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:              conn,
		dialect:         dialect,
		errorClassifier: classifier,
		builder:         sq.StatementBuilder.PlaceholderFormat(placeholder),
		ids:             utils.NewUUIDGenerator(),
		now:             func() time.Time { return time.Now().UTC() },
		logger:          log,
	}
}

// Migrate applies the embedded schema migrations for the connection's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect)
}

// classify maps a driver error to a store sentinel. Errors the classifier
// does not recognise are wrapped with [ErrExecutingQuery].
func (db *DB) classify(err error) error {
	if db.errorClassifier != nil {
		if classified := db.errorClassifier.Classify(err); classified != nil {
			return classified
		}
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
