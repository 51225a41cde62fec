// Package pgtest starts a throwaway PostgreSQL for integration tests.
package pgtest

import (
	"context"
	"time"

	adapter "schoollunch/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Tables is the truncate list matching adapter.Models.
const Tables = "order_lines, orders, favorites, students, products, admins"

// Run starts the container and returns a migrated connection opened the
// same way the service opens it.
func Run(ctx context.Context) (*postgres.PostgresContainer, *gorm.DB, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, nil, err
	}

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return container, nil, err
	}

	if err = adapter.Migrate(ctx, db); err != nil {
		return container, nil, err
	}

	return container, db, nil
}

// Truncate empties every table.
func Truncate(db *gorm.DB) error {
	return db.Exec("TRUNCATE TABLE " + Tables + " CASCADE").Error
}
