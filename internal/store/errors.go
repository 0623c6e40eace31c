package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("user with this email already exists")

	// ErrNoUserWasFound is returned when a lookup by email or id matches no
	// user record.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrProjectNotFound is returned when a read, update or delete targets a
	// project id that does not exist.
	ErrProjectNotFound = errors.New("project was not found")

	// ErrOwnerNotFound is returned when a project references a user id that
	// does not exist (foreign key violation).
	ErrOwnerNotFound = errors.New("project owner was not found")

	// ErrStoreUnavailable is returned when the driver reports a
	// connection-class failure.
	ErrStoreUnavailable = errors.New("store is unavailable")

	// ErrUnsupportedDSN is returned by [NewStorages] when the DSN scheme
	// matches neither PostgreSQL nor SQLite.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement against the
	// database fails for a reason no classifier recognises.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
