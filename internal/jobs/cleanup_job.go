package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// CleanupJob manages the periodic garbage collection of terminal jobs.
// Runs hourly to reclaim memory from completed and failed jobs older than the
// retention window.
type CleanupJob struct {
	queue     *Queue
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewCleanupJob creates the cleanup tick over the given queue.
// A non-positive retention falls back to DefaultRetentionWindow.
func NewCleanupJob(queue *Queue, retention time.Duration, logger *slog.Logger) *CleanupJob {
	if retention <= 0 {
		retention = DefaultRetentionWindow
	}

	return &CleanupJob{
		queue:     queue,
		retention: retention,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "cleanup_job"),
	}
}

// Start begins the cleanup tick, running at the top of every hour.
func (j *CleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		j.queue.Cleanup(j.retention)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cleanup job started (running hourly)", "retention", j.retention)
	return nil
}

// Stop stops the cleanup tick.
func (j *CleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cleanup job stopped")
}
