package store

import (
	"context"
	"database/sql/driver"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-project-hub/internal/config"
	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

type sequenceIDs struct {
	prefix string
	n      atomic.Int64
}

func (s *sequenceIDs) Generate() string {
	return fmt.Sprintf("%s-%d", s.prefix, s.n.Add(1))
}

// newMockDB returns a Postgres-flavoured DB over sqlmock with deterministic
// ids and clock.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db := newDB(conn, DialectPostgres, NewPostgresErrorClassifier(), logger.Nop())
	db.ids = &sequenceIDs{prefix: "id"}
	db.now = func() time.Time { return fixedNow }

	return db, mock
}

// newSQLiteStorages opens a migrated in-memory SQLite database.
func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	s, err := NewStorages(context.Background(), config.Storage{DB: config.DB{DSN: ":memory:"}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func errRowsAffected() driver.Result {
	return sqlmock.NewErrorResult(fmt.Errorf("rows affected unsupported"))
}
