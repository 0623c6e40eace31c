package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-project-hub/internal/config"
	"github.com/MKhiriev/go-project-hub/internal/logger"
)

// Storages bundles the repositories built over one database connection.
// It is constructed once at startup and injected into the service layer.
type Storages struct {
	UserRepository    UserRepository
	ProjectRepository ProjectRepository

	db *DB
}

// NewStorages opens the database selected by cfg.DB.DSN, applies the
// embedded migrations and builds the repositories.
//
// DSNs starting with "postgres://", "postgresql://" or containing libpq
// key=value pairs select PostgreSQL. "sqlite://", "file:" and ":memory:"
// select SQLite.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := connect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds the repositories over an already opened connection.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		ProjectRepository: NewProjectRepository(db, log),
		db:                db,
	}
}

// Ping verifies the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}

func connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case isSQLiteDSN(cfg.DSN):
		return NewConnectSQLite(ctx, cfg, log)
	case isPostgresDSN(cfg.DSN):
		return NewConnectPostgres(ctx, cfg, log)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, redactDSN(cfg.DSN))
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=") ||
		strings.Contains(dsn, "dbname=")
}

// redactDSN keeps only the scheme so credentials never reach logs or errors.
func redactDSN(dsn string) string {
	if scheme, _, ok := strings.Cut(dsn, "://"); ok {
		return scheme + "://..."
	}
	return "..."
}
