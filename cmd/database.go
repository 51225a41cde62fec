package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"schoollunch/internal/adapters/out/postgres"

	"github.com/lib/pq"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// EnsureDatabase creates the configured database when the server does not
// have it yet. It connects to the maintenance database "postgres".
func EnsureDatabase(ctx context.Context, cfg Config) error {
	db, err := sql.Open("postgres", cfg.DSN("postgres"))
	if err != nil {
		return err
	}
	defer db.Close()

	var exists bool
	err = db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)`, cfg.DBName,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check database %s: %w", cfg.DBName, err)
	}
	if exists {
		return nil
	}

	if _, err = db.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(cfg.DBName)); err != nil {
		return fmt.Errorf("create database %s: %w", cfg.DBName, err)
	}
	return nil
}

// OpenDatabase connects GORM with error translation on and migrates the
// schema.
func OpenDatabase(ctx context.Context, cfg Config, log *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(gorm_postgres.Open(cfg.DSN(cfg.DBName)), &gorm.Config{
		TranslateError: true,
		Logger: logger.New(gormWriter{log: log.With("component", "gorm")}, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			IgnoreRecordNotFoundError: true,
			LogLevel:                  logger.Warn,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err = postgres.Migrate(ctx, db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// gormWriter forwards GORM's warnings (slow queries, failed statements) to
// slog.
type gormWriter struct {
	log *slog.Logger
}

func (w gormWriter) Printf(format string, args ...any) {
	w.log.Warn(fmt.Sprintf(format, args...))
}
