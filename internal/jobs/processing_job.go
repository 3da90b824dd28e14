package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// ProcessingJob manages the periodic processing tick.
// Runs every 30 seconds to dispatch due consolidation jobs.
type ProcessingJob struct {
	processor *Processor
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewProcessingJob creates the processing tick over the given processor.
func NewProcessingJob(processor *Processor, logger *slog.Logger) *ProcessingJob {
	return &ProcessingJob{
		processor: processor,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "processing_job"),
	}
}

// Start begins the processing tick, running every 30 seconds.
func (j *ProcessingJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		j.processor.ProcessDueJobs(time.Now())
	})

	if err != nil {
		return err
	}

	j.processor.setRunning(true)
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Processing job started (running every 30 seconds)")
	return nil
}

// Stop stops the processing tick. Jobs already in flight run to completion.
func (j *ProcessingJob) Stop() {
	j.cron.Stop()
	j.processor.setRunning(false)
	j.logger.InfoContext(context.Background(), "Processing job stopped")
}
