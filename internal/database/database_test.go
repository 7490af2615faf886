package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/deppfellow/exercise-tracker/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Database.Path = filepath.Join(t.TempDir(), "tracker.db")
	return cfg
}

func TestNewCreatesSchema(t *testing.T) {
	logger := zerolog.Nop()
	db, err := New(newSQLiteConfig(t), &logger, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	for _, table := range []string{"users", "exercises"} {
		var name string
		err := db.DB.QueryRowContext(ctx,
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}

	require.NoError(t, db.Ping(ctx))
}

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	cfg := newSQLiteConfig(t)
	logger := zerolog.Nop()

	db, err := New(cfg, &logger, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.EnsureSchema(context.Background(), cfg))
}

func TestForeignKeysCascade(t *testing.T) {
	logger := zerolog.Nop()
	db, err := New(newSQLiteConfig(t), &logger, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()

	_, err = db.DB.ExecContext(ctx, "INSERT INTO exercises (id, user_id, description, duration, exercise_date) VALUES ('e0', 'missing', 'run', 10, '2024-01-01T00:00:00.000Z')")
	require.Error(t, err, "foreign keys must be enforced")

	_, err = db.DB.ExecContext(ctx, "INSERT INTO users (user_id, username) VALUES ('u1', 'alice')")
	require.NoError(t, err)
	_, err = db.DB.ExecContext(ctx, "INSERT INTO exercises (id, user_id, description, duration, exercise_date) VALUES ('e1', 'u1', 'run', 10, '2024-01-01T00:00:00.000Z')")
	require.NoError(t, err)

	_, err = db.DB.ExecContext(ctx, "DELETE FROM users WHERE user_id = 'u1'")
	require.NoError(t, err)

	var count int
	require.NoError(t, db.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM exercises").Scan(&count))
	assert.Zero(t, count)
}

func TestDialectRebind(t *testing.T) {
	query := "SELECT * FROM t WHERE a = ? AND b = '?' AND c = ?"

	assert.Equal(t, query, SQLiteDialect.Rebind(query))
	assert.Equal(t, "SELECT * FROM t WHERE a = $1 AND b = '?' AND c = $2", PostgresDialect.Rebind(query))
}

func TestDialectDate(t *testing.T) {
	assert.Equal(t, "DATE(exercise_date)", SQLiteDialect.Date("exercise_date"))
	assert.Equal(t, "CAST(? AS DATE)", PostgresDialect.Date("?"))
}
