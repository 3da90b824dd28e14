package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// StatsJob periodically logs queue statistics.
// Runs every 5 minutes; observability only, no state changes.
type StatsJob struct {
	queue  *Queue
	cron   *cron.Cron
	logger *slog.Logger
}

// NewStatsJob creates the stats tick over the given queue.
func NewStatsJob(queue *Queue, logger *slog.Logger) *StatsJob {
	return &StatsJob{
		queue:  queue,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "stats_job"),
	}
}

// Start begins the stats tick, running every 5 minutes.
func (j *StatsJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		stats := j.queue.Stats()
		j.logger.InfoContext(context.Background(), "Queue stats",
			"scheduled", stats.Scheduled,
			"processing", stats.Processing,
			"completed", stats.Completed,
			"failed", stats.Failed,
			"total", stats.Total,
			"processedOrders", stats.ProcessedOrders,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stats job started (running every 5 minutes)")
	return nil
}

// Stop stops the stats tick.
func (j *StatsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stats job stopped")
}
