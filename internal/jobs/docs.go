// Package jobs provides scheduled background tasks for the retail service.
//
// Jobs use github.com/robfig/cron/v3 with six-field expressions (seconds first).
//
// # Available Jobs
//
// ExpirePendingOrdersJob cancels WEB orders that stayed PENDING longer than the
// configured TTL, through the status transition command with actor "system".
// Orders that changed status meanwhile are skipped.
//
// # Usage
//
//	var expiry jobs.Job
//	if cfg.PendingOrderTTL > 0 {
//		expiry = jobs.NewExpirePendingOrdersJob(handler, metrics, cfg.PendingOrderTTL, cfg.PendingOrderSweepSchedule, logger)
//	}
//	jobManager := jobs.NewJobManager(expiry)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
