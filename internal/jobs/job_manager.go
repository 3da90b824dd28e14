package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled ticks in the application.
// Provides a unified interface to start and stop all background cadences.
type JobManager struct {
	processingJob *ProcessingJob
	cleanupJob    *CleanupJob
	statsJob      *StatsJob
}

// NewJobManager creates a job manager with all required ticks.
// Takes the processor and queue as dependencies to wire up execution.
func NewJobManager(
	processor *Processor,
	queue *Queue,
	retention time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		processingJob: NewProcessingJob(processor, logger),
		cleanupJob:    NewCleanupJob(queue, retention, logger),
		statsJob:      NewStatsJob(queue, logger),
	}
}

// StartAll starts all scheduled ticks.
// Returns an error if any tick fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.processingJob.Start(); err != nil {
		return fmt.Errorf("failed to start processing job: %w", err)
	}

	if err := jm.cleanupJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.processingJob.Stop()
		return fmt.Errorf("failed to start cleanup job: %w", err)
	}

	if err := jm.statsJob.Start(); err != nil {
		jm.cleanupJob.Stop()
		jm.processingJob.Stop()
		return fmt.Errorf("failed to start stats job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled ticks gracefully.
// In-flight consolidations run to their terminal outcome.
func (jm *JobManager) StopAll() {
	jm.statsJob.Stop()
	jm.cleanupJob.Stop()
	jm.processingJob.Stop()
}
