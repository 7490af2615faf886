package service

import (
	"context"
	"time"

	"github.com/deppfellow/exercise-tracker/internal/errs"
	"github.com/deppfellow/exercise-tracker/internal/middleware"
	"github.com/deppfellow/exercise-tracker/internal/model"
	"github.com/deppfellow/exercise-tracker/internal/observability"
	"github.com/deppfellow/exercise-tracker/internal/repository"
	"github.com/deppfellow/exercise-tracker/internal/server"
)

// LogQuery narrows a user's log. Every field is optional.
type LogQuery struct {
	From  *time.Time
	To    *time.Time
	Limit *int
}

// userFinder resolves the owner of a log.
type userFinder interface {
	GetUserByID(ctx context.Context, id string) (*model.User, error)
}

type ExerciseService struct {
	server    *server.Server
	users     userFinder
	exercises *repository.ExerciseRepository

	// now is replaced in tests.
	now func() time.Time
}

func NewExerciseService(s *server.Server, users *repository.UserRepository, exercises *repository.ExerciseRepository) *ExerciseService {
	return &ExerciseService{
		server:    s,
		users:     users,
		exercises: exercises,
		now:       time.Now,
	}
}

// AddExercise records an exercise for userID. A nil date means today.
func (s *ExerciseService) AddExercise(ctx context.Context, userID, description string, duration int, date *time.Time) (*model.Exercise, error) {
	when := s.now()
	if date != nil {
		when = *date
	}

	exercise, err := s.exercises.AddExercise(ctx, userID, description, duration, when)
	if err != nil {
		return nil, err
	}

	observability.RecordExerciseRecorded()
	middleware.LoggerFromContext(ctx, s.server.Logger).Info().
		Str("event", "exercise_recorded").
		Str("user_id", userID).
		Str("exercise_id", exercise.ID).
		Int("duration", duration).
		Msg("exercise recorded")

	return exercise, nil
}

func (s *ExerciseService) ListExercises(ctx context.Context, userID string) ([]model.Exercise, error) {
	return s.exercises.ListExercises(ctx, userID)
}

// GetLog returns the user's exercises within the date window.
//
// Count is the number of entries matching the window; Entries is cut down to
// Limit afterwards, so Count can exceed len(Entries).
func (s *ExerciseService) GetLog(ctx context.Context, userID string, query LogQuery) (*model.Log, error) {
	entries, err := s.exercises.GetLog(ctx, userID, query.From, query.To)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		middleware.LoggerFromContext(ctx, s.server.Logger).Error().
			Err(err).
			Str("user_id", userID).
			Msg("failed to resolve log owner")
		return nil, errs.NewInternalServerError()
	}
	if user == nil {
		// Deleted between the log query and the lookup.
		return nil, errs.NewConflictError("User with this ID doesn't exist")
	}

	count := len(entries)
	truncated := false
	if query.Limit != nil && *query.Limit >= 0 && *query.Limit < count {
		entries = entries[:*query.Limit]
		truncated = true
	}

	observability.RecordLogQuery(truncated)

	return &model.Log{
		User:    *user,
		Count:   count,
		Entries: entries,
	}, nil
}
