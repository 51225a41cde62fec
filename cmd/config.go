package cmd

import (
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPHost string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"school_lunch"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	// RedisAddress is optional; without it orders are serialized by the
	// database index alone and the catalog is not cached.
	RedisAddress  string `env:"REDIS_ADDRESS"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	JWTSecret string `env:"JWT_SECRET,required,notEmpty"`

	ScheduleTimezone  string `env:"SCHEDULE_TIMEZONE" envDefault:"Asia/Tokyo"`
	ScheduleDaysAhead int    `env:"SCHEDULE_DAYS_AHEAD" envDefault:"14"`

	OrderLockTTL    time.Duration `env:"ORDER_LOCK_TTL" envDefault:"10s"`
	CatalogCacheTTL time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"10m"`

	PickListExportDir string `env:"PICKLIST_EXPORT_DIR"`
	PickListCron      string `env:"PICKLIST_CRON" envDefault:"0 5 15 * * 1-5"`

	// AdminUserIDs are granted the STAFF role on startup.
	AdminUserIDs []string `env:"ADMIN_USER_IDS" envSeparator:","`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadConfig reads .env when present, then the process environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.ScheduleDaysAhead < 1 {
		return Config{}, fmt.Errorf("SCHEDULE_DAYS_AHEAD must be positive, got %d", cfg.ScheduleDaysAhead)
	}
	if cfg.OrderLockTTL <= 0 || cfg.CatalogCacheTTL <= 0 {
		return Config{}, fmt.Errorf("ORDER_LOCK_TTL and CATALOG_CACHE_TTL must be positive")
	}
	return cfg, nil
}

func (c Config) HTTPAddress() string {
	return net.JoinHostPort(c.HTTPHost, c.HTTPPort)
}

// DSN addresses dbName on the configured server.
func (c Config) DSN(dbName string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, dbName, c.DBSslMode)
}

func (c Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.ScheduleTimezone)
}

func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
