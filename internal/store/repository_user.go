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

// userRepository is the SQL implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser assigns a new ID and creation time to user and inserts it.
//
// Error handling:
//   - duplicate email → [ErrEmailAlreadyExists].
//   - connection failures → [ErrStoreUnavailable].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.ID = r.db.ids.Generate()
	user.CreatedAt = r.db.now()

	query, args, err := r.db.insertUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, r.db.classify(err)
	}

	return user, nil
}

// FindUserByEmail returns the user whose email matches exactly, or
// [ErrNoUserWasFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", sq.Eq{"email": email})
}

// FindUserByID returns the user with the given id, or [ErrNoUserWasFound].
func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", sq.Eq{"id": id})
}

// GetAllUsers returns every user ordered by creation time. An empty table
// yields an empty, non-nil slice.
func (r *userRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectUsersQuery(nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("error querying users")
		return nil, r.db.classify(err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err = scanUser(rows, &user); err != nil {
			log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("error scanning user")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("error iterating users")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

func (r *userRepository) findOne(ctx context.Context, funcName string, where sq.Sqlizer) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectUsersQuery(where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return models.User{}, err
	}

	var user models.User
	err = scanUser(r.db.QueryRowContext(ctx, query, args...), &user)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case err != nil:
		log.Err(err).Str("func", funcName).Msg("error finding user")
		return models.User{}, r.db.classify(err)
	}

	return user, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner, user *models.User) error {
	return row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)
}
