package jobs

import "fmt"

type job interface {
	Start() error
	Stop()
}

// JobManager starts and stops the scheduled jobs as one unit.
type JobManager struct {
	pickListExport *PickListExportJob
	catalogRefresh *CatalogRefreshJob
}

// NewJobManager takes the configured jobs. A nil job is skipped.
func NewJobManager(pickListExport *PickListExportJob, catalogRefresh *CatalogRefreshJob) *JobManager {
	return &JobManager{
		pickListExport: pickListExport,
		catalogRefresh: catalogRefresh,
	}
}

func (jm *JobManager) jobs() []namedJob {
	var jobs []namedJob
	if jm.pickListExport != nil {
		jobs = append(jobs, namedJob{"pick list export", jm.pickListExport})
	}
	if jm.catalogRefresh != nil {
		jobs = append(jobs, namedJob{"catalog refresh", jm.catalogRefresh})
	}
	return jobs
}

type namedJob struct {
	name string
	job  job
}

// StartAll starts every job. When one fails the jobs already started are
// stopped again.
func (jm *JobManager) StartAll() error {
	jobs := jm.jobs()
	for i, j := range jobs {
		if err := j.job.Start(); err != nil {
			for _, started := range jobs[:i] {
				started.job.Stop()
			}
			return fmt.Errorf("failed to start %s job: %w", j.name, err)
		}
	}
	return nil
}

// StopAll stops every job and waits for running executions to finish.
func (jm *JobManager) StopAll() {
	for _, j := range jm.jobs() {
		j.job.Stop()
	}
}
