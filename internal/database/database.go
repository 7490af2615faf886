// Package database owns the connection to the relational store.
//
// The default store is an embedded SQLite file; PostgreSQL is available
// through pgx for deployments that need a server. Both are exposed as a
// *sql.DB plus the Dialect the repositories use to build queries.
//
// It handles:
//   - opening the store selected by config
//   - pool tuning
//   - wiring query tracing/logging (pgx tracelog, New Relic nrpgx5) for postgres
//   - making sure the schema exists
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/deppfellow/exercise-tracker/internal/config"
	loggerConfig "github.com/deppfellow/exercise-tracker/internal/logger"
	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jackc/pgx/v5/tracelog"
	_ "github.com/mattn/go-sqlite3" // sqlite3 driver
	"github.com/newrelic/go-agent/v3/integrations/nrpgx5"
	"github.com/rs/zerolog"
)

// Database wraps the connection pool, its dialect and a logger.
// It is created once at startup and passed to every repository.
type Database struct {
	DB      *sql.DB
	Dialect Dialect
	log     *zerolog.Logger
}

// multiTracer allows chaining multiple pgx tracers.
//
// pgx supports a single Tracer in ConnConfig, this adapter runs the
// New Relic tracer and the local SQL logger together.
type multiTracer struct {
	tracers []any
}

// TraceQueryStart implements pgx.QueryTracer.
func (mt *multiTracer) TraceQueryStart(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	for _, tracer := range mt.tracers {
		if t, ok := tracer.(interface {
			TraceQueryStart(context.Context, *pgx.Conn, pgx.TraceQueryStartData) context.Context
		}); ok {
			ctx = t.TraceQueryStart(ctx, conn, data)
		}
	}
	return ctx
}

// TraceQueryEnd implements pgx.QueryTracer.
func (mt *multiTracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	for _, tracer := range mt.tracers {
		if t, ok := tracer.(interface {
			TraceQueryEnd(context.Context, *pgx.Conn, pgx.TraceQueryEndData)
		}); ok {
			t.TraceQueryEnd(ctx, conn, data)
		}
	}
}

// DatabasePingTimeout is the number of seconds to wait for the first ping.
const DatabasePingTimeout = 10

// New opens the configured store, tunes the pool, pings it and makes sure
// the users/exercises schema exists.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), DatabasePingTimeout*time.Second)
	defer cancel()

	var (
		db      *sql.DB
		dialect Dialect
		err     error
	)

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		db, err = openPostgres(cfg, logger, loggerService)
		dialect = PostgresDialect
	default:
		db, err = openSQLite(cfg.Database.Path)
		dialect = SQLiteDialect
	}
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)
	db.SetConnMaxIdleTime(time.Duration(cfg.Database.ConnMaxIdleTime) * time.Second)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	database := &Database{
		DB:      db,
		Dialect: dialect,
		log:     logger,
	}

	if err := database.EnsureSchema(ctx, cfg); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info().Str("driver", dialect.Name()).Msg("connected to the database")

	return database, nil
}

// openSQLite opens (creating if needed) the embedded database file.
//
// Foreign keys are a per-connection setting in SQLite, so they are enabled
// through the DSN to cover every pooled connection.
func openSQLite(path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("open sqlite: path is empty")
	}

	dsn := fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL", path)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return db, nil
}

// openPostgres opens a pgx-backed *sql.DB with instrumentation.
//
//   - Attach New Relic tracer if available
//   - In local env: attach SQL tracelogger (and chain tracers if both exist)
func openPostgres(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*sql.DB, error) {
	connConfig, err := pgx.ParseConfig(cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgx config: %w", err)
	}

	if loggerService.GetApplication() != nil {
		connConfig.Tracer = nrpgx5.NewTracer()
	}

	if cfg.Primary.Env == "local" {
		globalLevel := logger.GetLevel()
		pgxLogger := loggerConfig.NewPgxLogger(globalLevel)

		localTracer := &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(pgxLogger),
			LogLevel: loggerConfig.GetPgxTraceLogLevel(globalLevel),
		}

		if connConfig.Tracer != nil {
			connConfig.Tracer = &multiTracer{
				tracers: []any{connConfig.Tracer, localTracer},
			}
		} else {
			connConfig.Tracer = localTracer
		}
	}

	return stdlib.OpenDB(*connConfig), nil
}

// Ping checks the store is reachable.
func (db *Database) Ping(ctx context.Context) error {
	return db.DB.PingContext(ctx)
}

// Close closes the connection pool.
func (db *Database) Close() error {
	db.log.Info().Msg("closing database connection pool")
	return db.DB.Close()
}
