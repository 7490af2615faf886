package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/deppfellow/exercise-tracker/internal/database"
	"github.com/deppfellow/exercise-tracker/internal/model"
	"github.com/deppfellow/exercise-tracker/internal/sqlerr"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TimestampLayout is how exercise dates are stored: ISO-8601, UTC, milliseconds.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// dayLayout is the calendar-day form used for log bounds.
const dayLayout = "2006-01-02"

// ExerciseRepository persists exercises. It shares the users repository's
// existence guard.
type ExerciseRepository struct {
	db    *database.Database
	users *UserRepository
	log   *zerolog.Logger
}

// NewExerciseRepository constructs an ExerciseRepository.
func NewExerciseRepository(db *database.Database, users *UserRepository, logger *zerolog.Logger) *ExerciseRepository {
	return &ExerciseRepository{db: db, users: users, log: logger}
}

// AddExercise records an exercise for an existing user.
func (r *ExerciseRepository) AddExercise(ctx context.Context, userID, description string, duration int, date time.Time) (*model.Exercise, error) {
	if err := r.users.ensureUser(ctx, model.UserFieldID, userID, mustExist); err != nil {
		return nil, err
	}

	exercise := &model.Exercise{
		ID:          uuid.NewString(),
		UserID:      userID,
		Description: description,
		Duration:    duration,
		Date:        date.UTC().Truncate(time.Millisecond),
	}

	const stmt = `INSERT INTO exercises (id, user_id, description, duration, exercise_date) VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.DB.ExecContext(ctx, r.db.Dialect.Rebind(stmt),
		exercise.ID,
		exercise.UserID,
		exercise.Description,
		exercise.Duration,
		exercise.Date.Format(TimestampLayout),
	)
	if err != nil {
		// The user was deleted between the guard and the insert.
		if sqlerr.ErrCode(err) == sqlerr.ForeignKeyViolation {
			return nil, userConflict(model.UserFieldID, false)
		}
		r.log.Error().Err(err).Str("user_id", userID).Msg("failed to insert exercise")
		return nil, sqlerr.HandleError(err)
	}

	return exercise, nil
}

// ListExercises returns every exercise of a user in store order.
func (r *ExerciseRepository) ListExercises(ctx context.Context, userID string) ([]model.Exercise, error) {
	if err := r.users.ensureUser(ctx, model.UserFieldID, userID, mustExist); err != nil {
		return nil, err
	}

	const query = `SELECT id, user_id, description, duration, exercise_date FROM exercises WHERE user_id = ?`

	rows, err := r.db.DB.QueryContext(ctx, r.db.Dialect.Rebind(query), userID)
	if err != nil {
		r.log.Error().Err(err).Str("user_id", userID).Msg("failed to list exercises")
		return nil, sqlerr.HandleError(err)
	}
	defer rows.Close()

	exercises := make([]model.Exercise, 0)
	for rows.Next() {
		var (
			exercise model.Exercise
			stored   sql.NullString
		)
		if err := rows.Scan(&exercise.ID, &exercise.UserID, &exercise.Description, &exercise.Duration, &stored); err != nil {
			return nil, sqlerr.HandleError(err)
		}
		if exercise.Date, err = parseTimestamp(stored); err != nil {
			return nil, sqlerr.HandleError(err)
		}
		exercises = append(exercises, exercise)
	}

	if err := rows.Err(); err != nil {
		return nil, sqlerr.HandleError(err)
	}

	return exercises, nil
}

// GetLog returns the exercises of a user whose calendar day lies within
// [from, to]. Either bound may be nil. Entries are ordered by date.
func (r *ExerciseRepository) GetLog(ctx context.Context, userID string, from, to *time.Time) ([]model.LogEntry, error) {
	if err := r.users.ensureUser(ctx, model.UserFieldID, userID, mustExist); err != nil {
		return nil, err
	}

	dialect := r.db.Dialect
	day := dialect.Date("exercises.exercise_date")

	var query strings.Builder
	query.WriteString(`SELECT exercises.description, exercises.duration, exercises.exercise_date
        FROM users INNER JOIN exercises ON users.user_id = exercises.user_id
        WHERE users.user_id = ?`)
	args := []any{userID}

	if from != nil {
		query.WriteString(" AND " + day + " >= " + dialect.Date("?"))
		args = append(args, from.UTC().Format(dayLayout))
	}
	if to != nil {
		query.WriteString(" AND " + day + " <= " + dialect.Date("?"))
		args = append(args, to.UTC().Format(dayLayout))
	}
	query.WriteString(" ORDER BY exercises.exercise_date")

	rows, err := r.db.DB.QueryContext(ctx, dialect.Rebind(query.String()), args...)
	if err != nil {
		r.log.Error().Err(err).Str("user_id", userID).Msg("failed to query exercise log")
		return nil, sqlerr.HandleError(err)
	}
	defer rows.Close()

	entries := make([]model.LogEntry, 0)
	for rows.Next() {
		var (
			entry  model.LogEntry
			stored sql.NullString
		)
		if err := rows.Scan(&entry.Description, &entry.Duration, &stored); err != nil {
			return nil, sqlerr.HandleError(err)
		}
		if entry.Date, err = parseTimestamp(stored); err != nil {
			return nil, sqlerr.HandleError(err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, sqlerr.HandleError(err)
	}

	return entries, nil
}

// parseTimestamp turns a stored exercise_date back into a time. NULL yields
// the zero time.
func parseTimestamp(stored sql.NullString) (time.Time, error) {
	if !stored.Valid || stored.String == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse(TimestampLayout, stored.String)
	if err != nil {
		if t, err = time.Parse(time.RFC3339Nano, stored.String); err != nil {
			return time.Time{}, fmt.Errorf("parse exercise_date %q: %w", stored.String, err)
		}
	}
	return t.UTC(), nil
}
