package jobs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"schoollunch/internal/core/domain/model/kernel"
	"schoollunch/internal/core/domain/model/schedule"

	"github.com/robfig/cron/v3"
)

// DefaultPickListSpec fires on weekdays five minutes after the default cutoff.
const DefaultPickListSpec = "0 5 15 * * 1-5"

type pickListExporter interface {
	Export(ctx context.Context, deliveryDate kernel.Date, w io.Writer) error
}

// PickListExportJob writes the pick list of the delivery date whose ordering
// window closed today into dir as picklist-<date>.xlsx.
type PickListExportJob struct {
	exporter pickListExporter
	calendar *schedule.Calculator
	dir      string
	spec     string
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPickListExportJob creates the nightly pick list exporter.
// spec is a six-field cron expression evaluated in the calendar's zone;
// an empty spec means DefaultPickListSpec.
func NewPickListExportJob(
	exporter pickListExporter,
	calendar *schedule.Calculator,
	dir string,
	spec string,
	logger *slog.Logger,
) *PickListExportJob {
	if spec == "" {
		spec = DefaultPickListSpec
	}
	return &PickListExportJob{
		exporter: exporter,
		calendar: calendar,
		dir:      dir,
		spec:     spec,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds(), cron.WithLocation(calendar.Location())),
		logger:   logger.With("component", "pick_list_export_job"),
	}
}

// Start creates dir if needed and schedules the export.
func (j *PickListExportJob) Start() error {
	if err := os.MkdirAll(j.dir, 0o755); err != nil {
		return fmt.Errorf("create export dir %s: %w", j.dir, err)
	}

	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()
		path, err := j.Run(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pick list export failed", "error", err)
			return
		}
		if path != "" {
			j.logger.InfoContext(ctx, "Pick list exported", "path", path)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pick list export job started", "spec", j.spec, "dir", j.dir)
	return nil
}

// Stop waits for a running export to finish.
func (j *PickListExportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Pick list export job stopped")
}

// Run exports the delivery date whose deadline fell today and has passed.
// It returns the written path, or "" when no window closed today.
func (j *PickListExportJob) Run(ctx context.Context) (string, error) {
	now := j.now()
	date, ok := closedOn(j.calendar, j.calendar.Today(now))
	if !ok {
		return "", nil
	}
	if j.calendar.IsActionable(date, now) {
		j.logger.InfoContext(ctx, "Orders are still open, skipping export", "deliveryDate", date)
		return "", nil
	}

	tmp, err := os.CreateTemp(j.dir, "picklist-*.tmp")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if err = j.exporter.Export(ctx, date, tmp); err != nil {
		tmp.Close()
		return "", fmt.Errorf("export %s: %w", date, err)
	}
	if err = tmp.Close(); err != nil {
		return "", err
	}

	path := filepath.Join(j.dir, fmt.Sprintf("picklist-%s.xlsx", date))
	if err = os.Rename(tmp.Name(), path); err != nil {
		return "", err
	}
	return path, nil
}

// closedOn finds the business day whose deadline falls on today. Weekends
// close nothing.
func closedOn(calendar *schedule.Calculator, today kernel.Date) (kernel.Date, bool) {
	for i := 1; i <= 2*7; i++ {
		d := today.AddDays(i)
		if !calendar.IsBusinessDay(d) {
			continue
		}
		if kernel.DateOf(calendar.Deadline(d), calendar.Location()).Equal(today) {
			return d, true
		}
	}
	return kernel.Date{}, false
}
