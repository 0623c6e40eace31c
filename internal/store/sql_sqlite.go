package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-project-hub/internal/config"
	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/mattn/go-sqlite3"
)

const sqliteScheme = "sqlite://"

// NewConnectSQLite opens a SQLite database for cfg.DSN. Accepted forms are
// "sqlite://path", "file:path?opts" and ":memory:". Foreign keys are always
// switched on, and the pool is limited to a single connection so an
// in-memory database lives as long as the pool does.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite3", sqliteDSN(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	conn.SetMaxOpenConns(1)
	conn.SetConnMaxLifetime(0)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return newDB(conn, DialectSQLite, NewSQLiteErrorClassifier(), log), nil
}

// isSQLiteDSN reports whether dsn selects the SQLite backend.
func isSQLiteDSN(dsn string) bool {
	return strings.HasPrefix(dsn, sqliteScheme) || strings.HasPrefix(dsn, "file:") || dsn == ":memory:"
}

// sqliteDSN converts dsn into a go-sqlite3 connection string with foreign
// key enforcement enabled.
func sqliteDSN(dsn string) string {
	if rest, ok := strings.CutPrefix(dsn, sqliteScheme); ok {
		dsn = "file:" + rest
	}
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on"
}

// SQLiteErrorClassifier implements [ErrorClassifier] for go-sqlite3.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassifier] using the extended result codes of
// go-sqlite3. Only a unique violation on users.email is a conflict; SQLite
// names the column only in the error text.
func (c *SQLiteErrorClassifier) Classify(err error) error {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return nil
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique:
		if strings.Contains(sqliteErr.Error(), sqliteUserEmailConstraint) {
			return ErrEmailAlreadyExists
		}
		return nil
	case sqlite3.ErrConstraintForeignKey:
		return ErrOwnerNotFound
	}

	switch sqliteErr.Code {
	case sqlite3.ErrCantOpen, sqlite3.ErrBusy, sqlite3.ErrLocked:
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return nil
}
