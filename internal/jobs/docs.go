// Package jobs provides the scheduled background work of the fulfillment
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// The only job today is ProcessOrdersJob, which polls the marketplace order
// feed on a configurable schedule and runs one pipeline pass per tick.
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(processOrdersHandler, status, schedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// Schedules are six-field cron expressions (seconds included). A pipeline
// run is sequential and self-isolating: per-order failures are counted in
// the run report and logged by the handler, so the job itself only reports
// a run that could not execute at all.
package jobs
