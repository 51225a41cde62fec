package jobs

import (
	"context"
	"log/slog"
	"time"

	"schoollunch/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

type catalogRefresher interface {
	Refresh(ctx context.Context) ([]queries.ProductView, error)
}

// CatalogRefreshJob reloads the product catalog into the cache before the
// cached copy expires.
type CatalogRefreshJob struct {
	refresher catalogRefresher
	every     time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewCatalogRefreshJob creates a job that calls refresher.Refresh every interval.
func NewCatalogRefreshJob(refresher catalogRefresher, every time.Duration, logger *slog.Logger) *CatalogRefreshJob {
	return &CatalogRefreshJob{
		refresher: refresher,
		every:     every,
		cron:      cron.New(),
		logger:    logger.With("component", "catalog_refresh_job"),
	}
}

// Start schedules the refresh. Failures are logged and retried on the next tick.
func (j *CatalogRefreshJob) Start() error {
	j.cron.Schedule(cron.Every(j.every), cron.FuncJob(func() {
		ctx := context.Background()
		products, err := j.refresher.Refresh(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Catalog refresh failed", "error", err)
			return
		}
		j.logger.DebugContext(ctx, "Catalog refreshed", "products", len(products))
	}))

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Catalog refresh job started", "every", j.every)
	return nil
}

// Stop waits for a running refresh to finish.
func (j *CatalogRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Catalog refresh job stopped")
}
