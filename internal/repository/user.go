package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/deppfellow/exercise-tracker/internal/database"
	"github.com/deppfellow/exercise-tracker/internal/model"
	"github.com/deppfellow/exercise-tracker/internal/sqlerr"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// UserRepository persists users.
type UserRepository struct {
	db  *database.Database
	log *zerolog.Logger
}

// NewUserRepository constructs a UserRepository.
func NewUserRepository(db *database.Database, logger *zerolog.Logger) *UserRepository {
	return &UserRepository{db: db, log: logger}
}

// CreateUser registers username under a freshly generated id.
//
// The existence check and the insert are not atomic. Two concurrent creates
// for the same username can both pass the guard; the UNIQUE constraint then
// rejects the second insert, which is reported as the same conflict.
func (r *UserRepository) CreateUser(ctx context.Context, username string) (*model.User, error) {
	id := uuid.NewString()

	if err := r.ensureUser(ctx, model.UserFieldUsername, username, mustNotExist); err != nil {
		return nil, err
	}

	const stmt = `INSERT INTO users (user_id, username) VALUES (?, ?)`

	if _, err := r.db.DB.ExecContext(ctx, r.db.Dialect.Rebind(stmt), id, username); err != nil {
		if sqlerr.ErrCode(err) == sqlerr.UniqueViolation {
			return nil, userConflict(model.UserFieldUsername, true)
		}
		r.log.Error().Err(err).Msg("failed to insert user")
		return nil, sqlerr.HandleError(err)
	}

	return &model.User{ID: id, Username: username}, nil
}

// GetUserByID returns the user with the given id, or nil when none exists.
func (r *UserRepository) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	return r.GetUserByField(ctx, model.UserFieldID, id)
}

// GetUserByField looks a user up by one of its unique columns.
// It returns nil, nil when no row matches.
func (r *UserRepository) GetUserByField(ctx context.Context, field model.UserField, value string) (*model.User, error) {
	if !field.Valid() {
		return nil, fmt.Errorf("unsupported user lookup field %q", field)
	}

	query := fmt.Sprintf(`SELECT user_id, username FROM users WHERE %s = ?`, field)

	var user model.User
	err := r.db.DB.QueryRowContext(ctx, r.db.Dialect.Rebind(query), value).Scan(&user.ID, &user.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by %s: %w", field, err)
	}

	return &user, nil
}

// ListUsers returns every user in store order.
func (r *UserRepository) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.DB.QueryContext(ctx, `SELECT user_id, username FROM users`)
	if err != nil {
		r.log.Error().Err(err).Msg("failed to list users")
		return nil, sqlerr.HandleError(err)
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		var user model.User
		if err := rows.Scan(&user.ID, &user.Username); err != nil {
			return nil, sqlerr.HandleError(err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, sqlerr.HandleError(err)
	}

	return users, nil
}
