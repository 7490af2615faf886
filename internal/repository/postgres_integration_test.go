//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/deppfellow/exercise-tracker/internal/config"
	"github.com/deppfellow/exercise-tracker/internal/database"
	"github.com/deppfellow/exercise-tracker/internal/errs"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

func newPostgresRepositories(t *testing.T) (*UserRepository, *ExerciseRepository) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("tracker"),
		postgres.WithUsername("tracker"),
		postgres.WithPassword("tracker"),
		postgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	cfg := config.Default()
	cfg.Database.Driver = config.DriverPostgres
	cfg.Database.URL = dsn

	logger := zerolog.Nop()
	db, err := database.New(cfg, &logger, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	// A second run must find the schema already at the latest version.
	require.NoError(t, db.EnsureSchema(ctx, cfg))

	users := NewUserRepository(db, &logger)
	return users, NewExerciseRepository(db, users, &logger)
}

func TestPostgresRepositories(t *testing.T) {
	users, exercises := newPostgresRepositories(t)
	ctx := context.Background()

	user, err := users.CreateUser(ctx, "alice")
	require.NoError(t, err)

	_, err = users.CreateUser(ctx, "alice")
	assert.ErrorIs(t, err, errs.ErrConflict)

	for _, d := range []string{"2024-01-01", "2024-01-05", "2024-01-10"} {
		_, err := exercises.AddExercise(ctx, user.ID, "run", 30, day(t, d))
		require.NoError(t, err)
	}

	from := day(t, "2024-01-02")
	entries, err := exercises.GetLog(ctx, user.ID, &from, nil)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "2024-01-05", entries[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2024-01-10", entries[1].Date.Format("2006-01-02"))

	list, err := exercises.ListExercises(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	_, err = exercises.AddExercise(ctx, "4c1d7f0e-9f6a-4b3e-8a51-2d7c9e0b1f22", "run", 30, time.Now())
	assert.ErrorIs(t, err, errs.ErrConflict)
}
