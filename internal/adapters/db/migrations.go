// internal/adapters/db/migrations.go
package db

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// MigrationConfig points the schema runner at a database.
type MigrationConfig struct {
	DatabaseURL string
	Table       string
	Schema      string
	// Attempts bounds how often Migrate reconnects before giving up.
	Attempts int
	// Force clears a dirty flag left by an interrupted run.
	Force bool
}

func (c MigrationConfig) withDefaults() MigrationConfig {
	if c.Table == "" {
		c.Table = "schema_migrations"
	}
	if c.Schema == "" {
		c.Schema = "public"
	}
	if c.Attempts <= 0 {
		c.Attempts = 3
	}
	return c
}

// SchemaState describes where the shop schema stands against the embedded files.
type SchemaState struct {
	Version uint               `json:"version"`
	Latest  uint               `json:"latest"`
	Dirty   bool               `json:"dirty"`
	Applied []AppliedMigration `json:"applied"`
}

// Pending reports whether embedded migrations have not been applied yet.
func (s SchemaState) Pending() bool { return s.Version < s.Latest }

// AppliedMigration is one row of the version table.
type AppliedMigration struct {
	Version uint `json:"version"`
	Dirty   bool `json:"dirty"`
}

type schemaRunner struct {
	m      *migrate.Migrate
	conn   *sql.DB
	cfg    MigrationConfig
	logger *slog.Logger
}

func openSchemaRunner(ctx context.Context, cfg MigrationConfig, logger *slog.Logger) (*schemaRunner, error) {
	conn, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	conn.SetMaxOpenConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	driver, err := pgx.WithInstance(conn, &pgx.Config{
		MigrationsTable: cfg.Table,
		SchemaName:      cfg.Schema,
	})
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create migration driver: %w", err)
	}

	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to read embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "pgx5", driver)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}

	return &schemaRunner{m: m, conn: conn, cfg: cfg, logger: logger}, nil
}

func (r *schemaRunner) up(ctx context.Context) error {
	version, dirty, err := r.m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if dirty {
		if !r.cfg.Force {
			return fmt.Errorf("schema version %d is dirty", version)
		}
		r.logger.WarnContext(ctx, "clearing dirty schema version", slog.Uint64("version", uint64(version)))
		if err := r.m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force schema version: %w", err)
		}
	}

	err = r.m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		r.logger.InfoContext(ctx, "schema up to date", slog.Uint64("version", uint64(version)))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	if v, _, err := r.m.Version(); err == nil {
		r.logger.InfoContext(ctx, "schema migrated",
			slog.Uint64("from", uint64(version)),
			slog.Uint64("to", uint64(v)))
	}
	return nil
}

func (r *schemaRunner) close() {
	if srcErr, dbErr := r.m.Close(); srcErr != nil || dbErr != nil {
		r.logger.Warn("failed to close schema runner",
			slog.Any("source_error", srcErr),
			slog.Any("db_error", dbErr))
	}
}

// Migrate applies every embedded migration, reconnecting with a linear
// backoff while the database is still coming up.
func Migrate(ctx context.Context, cfg MigrationConfig, logger *slog.Logger) error {
	cfg = cfg.withDefaults()
	logger = logger.With(slog.String("component", "migrations"))

	var lastErr error
	for attempt := 1; attempt <= cfg.Attempts; attempt++ {
		if attempt > 1 {
			wait := time.Duration(attempt-1) * 2 * time.Second
			logger.InfoContext(ctx, "retrying migrations",
				slog.Int("attempt", attempt),
				slog.Duration("wait", wait))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}

		runner, err := openSchemaRunner(ctx, cfg, logger)
		if err != nil {
			lastErr = err
			logger.ErrorContext(ctx, "migration connect failed",
				slog.Int("attempt", attempt),
				slog.String("error", err.Error()))
			continue
		}

		err = runner.up(ctx)
		runner.close()
		if err == nil {
			return nil
		}
		lastErr = err
		logger.ErrorContext(ctx, "migration failed",
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()))
	}

	return fmt.Errorf("migrations failed after %d attempts: %w", cfg.Attempts, lastErr)
}

// Inspect reports the applied schema version without changing anything.
func Inspect(ctx context.Context, cfg MigrationConfig, logger *slog.Logger) (*SchemaState, error) {
	cfg = cfg.withDefaults()
	runner, err := openSchemaRunner(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	defer runner.close()

	version, dirty, err := runner.m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return nil, fmt.Errorf("failed to read schema version: %w", err)
	}

	applied, err := appliedMigrations(ctx, runner.conn, cfg.Schema, cfg.Table)
	if err != nil {
		return nil, err
	}

	latest, err := latestEmbeddedVersion(migrationFiles)
	if err != nil {
		return nil, err
	}

	return &SchemaState{Version: version, Latest: latest, Dirty: dirty, Applied: applied}, nil
}

func appliedMigrations(ctx context.Context, conn *sql.DB, schema, table string) ([]AppliedMigration, error) {
	rows, err := conn.QueryContext(ctx, fmt.Sprintf(`SELECT version, dirty FROM %s.%s ORDER BY version ASC`, schema, table))
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make([]AppliedMigration, 0)
	for rows.Next() {
		var a AppliedMigration
		if err := rows.Scan(&a.Version, &a.Dirty); err != nil {
			return nil, fmt.Errorf("failed to scan migration: %w", err)
		}
		applied = append(applied, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate migrations: %w", err)
	}
	return applied, nil
}

// latestEmbeddedVersion reads the highest NNNNNN_ prefix among the up files.
func latestEmbeddedVersion(files fs.FS) (uint, error) {
	entries, err := fs.ReadDir(files, "migrations")
	if err != nil {
		return 0, fmt.Errorf("failed to list migrations: %w", err)
	}

	var latest uint
	for _, e := range entries {
		name := e.Name()
		if !strings.HasSuffix(name, ".up.sql") {
			continue
		}
		prefix, _, ok := strings.Cut(name, "_")
		if !ok {
			return 0, fmt.Errorf("migration %q has no version prefix", name)
		}
		v, err := strconv.ParseUint(prefix, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("migration %q has a malformed version: %w", name, err)
		}
		if uint(v) > latest {
			latest = uint(v)
		}
	}
	return latest, nil
}
