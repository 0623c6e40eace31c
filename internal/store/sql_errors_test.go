package store

import (
	"errors"
	"testing"

	"github.com/MKhiriev/go-project-hub/internal/logger"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil", err: nil, want: nil},
		{name: "not a pg error", err: errors.New("x"), want: nil},
		{name: "unique email", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"}, want: ErrEmailAlreadyExists},
		{name: "unique on another constraint", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "projects_pkey"}, want: nil},
		{name: "foreign key", err: &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, want: ErrOwnerNotFound},
		{name: "connection failure", err: &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, want: ErrStoreUnavailable},
		{name: "cannot connect now", err: &pgconn.PgError{Code: pgerrcode.CannotConnectNow}, want: ErrStoreUnavailable},
		{name: "syntax error", err: &pgconn.PgError{Code: pgerrcode.SyntaxError}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	// Without the "users.email" text a unique violation is not an email conflict.
	assert.NoError(t, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}))
	assert.NoError(t, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}))
	assert.ErrorIs(t, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}), ErrOwnerNotFound)
	assert.ErrorIs(t, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}), ErrStoreUnavailable)
	assert.NoError(t, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintCheck}))
	assert.NoError(t, c.Classify(errors.New("x")))
}

func TestDBClassify_OtherUniqueViolationIsNotEmailConflict(t *testing.T) {
	db := &DB{errorClassifier: NewPostgresErrorClassifier()}

	err := db.classify(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "projects_pkey"})

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestNewDB_PlaceholderPerDialect(t *testing.T) {
	tests := []struct {
		dialect string
		want    string
	}{
		{dialect: DialectPostgres, want: "SELECT id FROM users WHERE email = $1"},
		{dialect: DialectSQLite, want: "SELECT id FROM users WHERE email = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.dialect, func(t *testing.T) {
			db := newDB(nil, tt.dialect, nil, logger.Nop())

			query, args, err := db.builder.Select("id").From("users").Where(sq.Eq{"email": "a@b.c"}).ToSql()

			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, []any{"a@b.c"}, args)
		})
	}
}

func TestDBClassify_FallsBackToExecutingQuery(t *testing.T) {
	db := &DB{}

	err := db.classify(errors.New("boom"))

	assert.ErrorIs(t, err, ErrExecutingQuery)
}
