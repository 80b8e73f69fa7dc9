package jobs

import (
	"fmt"
)

// Job is a background task with a start/stop lifecycle.
type Job interface {
	Name() string
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs    []Job
	started []Job
}

// NewJobManager creates a job manager for the given jobs. Nil jobs are skipped,
// which is how disabled jobs are left out.
func NewJobManager(jobs ...Job) *JobManager {
	jm := &JobManager{}
	for _, job := range jobs {
		if job != nil {
			jm.jobs = append(jm.jobs, job)
		}
	}
	return jm
}

// StartAll starts all scheduled jobs.
// If one fails to start, the jobs already started are stopped again.
func (jm *JobManager) StartAll() error {
	for _, job := range jm.jobs {
		if err := job.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start %s job: %w", job.Name(), err)
		}
		jm.started = append(jm.started, job)
	}

	return nil
}

// StopAll stops the started jobs in reverse order.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].Stop()
	}
	jm.started = nil
}
