// Package jobs provides scheduled background tasks for the order service.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3, and are managed
// through JobManager:
//
//	jobManager := jobs.NewJobManager(orderStatsHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// Currently one job exists: OrderStatsJob logs order counts per status
// every minute. Job failures are logged and never interrupt request
// handling.
package jobs
