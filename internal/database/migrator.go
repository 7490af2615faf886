package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/deppfellow/exercise-tracker/internal/config"
	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
)

// The schema files are embedded so the binary carries them.
//
//go:embed migrations/*.sql
var migrations embed.FS

// EnsureSchema makes sure the users and exercises tables exist.
//
// SQLite executes the embedded schema directly; every statement is
// idempotent. PostgreSQL goes through tern so the applied version is
// recorded in schema_version.
func (db *Database) EnsureSchema(ctx context.Context, cfg *config.Config) error {
	if db.Dialect == PostgresDialect {
		return db.migratePostgres(ctx, cfg.Database.URL)
	}

	entries, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("listing schema files: %w", err)
	}

	for _, name := range entries {
		contents, err := migrations.ReadFile(name)
		if err != nil {
			return fmt.Errorf("reading schema file %s: %w", name, err)
		}
		if _, err := db.DB.ExecContext(ctx, string(contents)); err != nil {
			return fmt.Errorf("applying schema file %s: %w", name, err)
		}
	}

	db.log.Info().Int("files", len(entries)).Msg("database schema ensured")
	return nil
}

// migratePostgres runs the embedded migrations using jackc/tern over a
// dedicated connection.
func (db *Database) migratePostgres(ctx context.Context, dsn string) error {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return fmt.Errorf("connecting for migrations: %w", err)
	}
	defer conn.Close(ctx)

	m, err := tern.NewMigrator(ctx, conn, "schema_version")
	if err != nil {
		return fmt.Errorf("constructing database migrator: %w", err)
	}

	subtree, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("retrieving database migrations subtree: %w", err)
	}

	if err := m.LoadMigrations(subtree); err != nil {
		return fmt.Errorf("loading database migrations: %w", err)
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("retrieving current database migration version: %w", err)
	}

	if err := m.Migrate(ctx); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	if from == int32(len(m.Migrations)) {
		db.log.Info().Msgf("database schema up to date, version %d", len(m.Migrations))
	} else {
		db.log.Info().Msgf("migrated database schema, from %d to %d", from, len(m.Migrations))
	}
	return nil
}
