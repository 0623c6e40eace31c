package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresErrorClassifier implements [ErrorClassifier] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassifier]. It attempts to unwrap err as a
// *pgconn.PgError and delegates to [ClassifyPgError]. If err is nil or is not
// a PostgreSQL driver error, nil is returned.
func (c *PostgresErrorClassifier) Classify(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return nil
}

// ClassifyPgError maps a *pgconn.PgError to a store sentinel based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
//   - 23505 on users_email_key     → [ErrEmailAlreadyExists]
//   - 23503 foreign_key_violation  → [ErrOwnerNotFound]
//   - Class 08, 57P03              → [ErrStoreUnavailable]
//
// Any other code, including unique violations on other constraints, yields nil.
func ClassifyPgError(pgErr *pgconn.PgError) error {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		if pgErr.ConstraintName == postgresUserEmailConstraint {
			return ErrEmailAlreadyExists
		}
		return nil

	case pgerrcode.ForeignKeyViolation:
		return ErrOwnerNotFound

	// Class 08: connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.SQLClientUnableToEstablishSQLConnection,
		pgerrcode.SQLServerRejectedEstablishmentOfSQLConnection,
		// Class 57: operator intervention
		pgerrcode.CannotConnectNow:
		return fmt.Errorf("%w: %s", ErrStoreUnavailable, pgErr.Message)
	}

	return nil
}
