package service

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/deppfellow/exercise-tracker/internal/config"
	"github.com/deppfellow/exercise-tracker/internal/errs"
	"github.com/deppfellow/exercise-tracker/internal/model"
	"github.com/deppfellow/exercise-tracker/internal/repository"
	"github.com/deppfellow/exercise-tracker/internal/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServices(t *testing.T) *Services {
	t.Helper()
	return newTestServicesWithLogger(t, zerolog.Nop())
}

func newTestServicesWithLogger(t *testing.T, logger zerolog.Logger) *Services {
	t.Helper()

	cfg := config.Default()
	cfg.Database.Path = filepath.Join(t.TempDir(), "tracker.db")

	srv, err := server.New(cfg, &logger, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.DB.Close() })

	services, err := NewService(srv, repository.NewRepositories(srv))
	require.NoError(t, err)
	return services
}

func date(t *testing.T, value string) *time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return &d
}

func intPtr(v int) *int { return &v }

func TestAddExerciseDefaultsToNow(t *testing.T) {
	services := newTestServices(t)
	ctx := context.Background()

	fixed := time.Date(2024, 3, 14, 9, 26, 53, 0, time.UTC)
	services.Exercises.now = func() time.Time { return fixed }

	user, err := services.Users.CreateUser(ctx, "alice")
	require.NoError(t, err)

	exercise, err := services.Exercises.AddExercise(ctx, user.ID, "walk", 45, nil)
	require.NoError(t, err)
	assert.True(t, fixed.Equal(exercise.Date))

	exercise, err = services.Exercises.AddExercise(ctx, user.ID, "walk", 45, date(t, "2024-01-01"))
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", exercise.Date.Format("2006-01-02"))
}

func TestGetLogCountIgnoresLimit(t *testing.T) {
	services := newTestServices(t)
	ctx := context.Background()

	user, err := services.Users.CreateUser(ctx, "bob")
	require.NoError(t, err)

	for _, d := range []string{"2024-01-01", "2024-01-05", "2024-01-10"} {
		_, err := services.Exercises.AddExercise(ctx, user.ID, "run", 30, date(t, d))
		require.NoError(t, err)
	}

	log, err := services.Exercises.GetLog(ctx, user.ID, LogQuery{
		From:  date(t, "2024-01-02"),
		To:    date(t, "2024-01-10"),
		Limit: intPtr(1),
	})
	require.NoError(t, err)

	assert.Equal(t, user.ID, log.User.ID)
	assert.Equal(t, "bob", log.User.Username)
	assert.Equal(t, 2, log.Count)
	require.Len(t, log.Entries, 1)
	assert.Equal(t, "2024-01-05", log.Entries[0].Date.Format("2006-01-02"))
}

func TestGetLogWithoutFilters(t *testing.T) {
	services := newTestServices(t)
	ctx := context.Background()

	user, err := services.Users.CreateUser(ctx, "carol")
	require.NoError(t, err)

	for _, d := range []string{"2024-01-01", "2024-01-05"} {
		_, err := services.Exercises.AddExercise(ctx, user.ID, "bike", 60, date(t, d))
		require.NoError(t, err)
	}

	log, err := services.Exercises.GetLog(ctx, user.ID, LogQuery{Limit: intPtr(10)})
	require.NoError(t, err)
	assert.Equal(t, 2, log.Count)
	assert.Len(t, log.Entries, 2)
}

func TestGetLogUnknownUser(t *testing.T) {
	services := newTestServices(t)

	_, err := services.Exercises.GetLog(context.Background(), "5f0c3c8e-7c33-4a4f-9d4e-0a4b6a3f8a11", LogQuery{})
	assert.ErrorIs(t, err, errs.ErrConflict)
}

func TestCreateUserDuplicate(t *testing.T) {
	services := newTestServices(t)
	ctx := context.Background()

	_, err := services.Users.CreateUser(ctx, "dave")
	require.NoError(t, err)
	_, err = services.Users.CreateUser(ctx, "dave")
	assert.ErrorIs(t, err, errs.ErrConflict)

	users, err := services.Users.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

type failingUsers struct{ err error }

func (f failingUsers) GetUserByID(context.Context, string) (*model.User, error) {
	return nil, f.err
}

func TestGetLogLogsOwnerLookupFailure(t *testing.T) {
	var buf bytes.Buffer
	services := newTestServicesWithLogger(t, zerolog.New(&buf))
	ctx := context.Background()

	user, err := services.Users.CreateUser(ctx, "gwen")
	require.NoError(t, err)

	services.Exercises.users = failingUsers{err: errors.New("disk I/O error")}

	_, err = services.Exercises.GetLog(ctx, user.ID, LogQuery{})
	assert.ErrorIs(t, err, errs.ErrInternal)
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), "disk I/O error")
	assert.Contains(t, buf.String(), user.ID)
}
