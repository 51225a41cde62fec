package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"schoollunch/cmd"
	api "schoollunch/internal/adapters/in/http"
	"schoollunch/internal/adapters/out/redis"

	goredis "github.com/redis/go-redis/v9"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("School lunch service stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = cmd.EnsureDatabase(ctx, cfg); err != nil {
		return err
	}
	db, err := cmd.OpenDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}

	var redisClient goredis.UniversalClient
	if cfg.RedisAddress != "" {
		client, err := redis.Connect(ctx, cfg.RedisAddress, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return err
		}
		defer client.Close()
		redisClient = client
	} else {
		logger.WarnContext(ctx, "REDIS_ADDRESS is not set; order locking and catalog cache are disabled")
	}

	app, err := cmd.NewCompositionRoot(cfg, db, redisClient, logger)
	if err != nil {
		return err
	}
	if err = app.SeedAdmins(ctx); err != nil {
		return err
	}

	jobManager := app.JobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := api.NewRouter(api.NewServer(app.Handlers(), logger), api.RouterConfig{
		JWTSecret: cfg.JWTSecret,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "HTTP server listening", "address", cfg.HTTPAddress())
		if err := e.Start(cfg.HTTPAddress()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err = <-serverErr:
		return err
	case <-ctx.Done():
		logger.InfoContext(context.Background(), "Signal received, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
