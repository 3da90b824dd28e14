// Package jobs provides the in-process deferred-job scheduler for order
// consolidation.
//
// This package implements the job queue (scheduling, idempotency, retry with
// exponential backoff, garbage collection) and the processor that drives it on
// cron-based ticks using github.com/robfig/cron/v3.
//
// # Cadences
//
// 1. ProcessingJob - every 30 seconds, dispatches due jobs to the consolidation engine
// 2. StatsJob - every 5 minutes, logs queue statistics
// 3. CleanupJob - hourly, removes terminal jobs older than the retention window
//
// # Usage
//
// Ticks are managed through JobManager which provides a unified interface:
//
//	queue := jobs.NewQueue(logger)
//	processor := jobs.NewProcessor(queue, &consolidateHandler, logger)
//	jobManager := jobs.NewJobManager(processor, queue, jobs.DefaultRetentionWindow, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Lifecycle
//
// A job travels scheduled -> processing -> completed on success. On failure it
// returns to scheduled with exponential backoff (1, 2, 4 minutes) until the
// attempts ceiling, then lands in the terminal failed state. Completed orders
// enter the processed-order set and can never be scheduled again; permanently
// failed orders stay out of that set, which matches the upstream behavior of
// allowing a later duplicate event to try again from scratch.
//
// # Error Handling
//
// - The processor converts every engine error into a queue state transition
// - One job's failure never affects sibling jobs dispatched in the same tick
// - Failed tick starts stop any already running ticks
package jobs
